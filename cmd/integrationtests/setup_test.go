package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	bidding "bidding-platform/internal/biddingService"
	closing "bidding-platform/internal/closingService"
	model "bidding-platform/internal/models"
	"bidding-platform/internal/repository"
	"bidding-platform/internal/server"

	"github.com/gin-gonic/gin"
)

// captureNotifier records every outbound email instead of delivering it
type captureNotifier struct {
	mu         sync.Mutex
	recipients []string
}

func (n *captureNotifier) Send(recipientEmail, subject, htmlContent, textContent string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.recipients = append(n.recipients, recipientEmail)
	return nil
}

func (n *captureNotifier) sentTo(email string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, r := range n.recipients {
		if r == email {
			count++
		}
	}
	return count
}

// testEnv bundles the router with the stores behind it so tests can seed
// data and inspect side effects
type testEnv struct {
	router   *gin.Engine
	repo     *repository.MemoryRepo
	notifier *captureNotifier
}

// SetupTestEnv initializes the router with the in-memory repository and a
// capturing notifier, seeded with one admin and two bidders.
func SetupTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	repo.AddUser(model.User{UserID: "admin1", FirstName: "Ops", LastName: "Team", Email: "ops@example.com", IsAdmin: true})
	repo.AddUser(model.User{UserID: "user1", FirstName: "Dana", LastName: "Hart", Company: "Greenfield Ltd", Email: "dana@example.com"})
	repo.AddUser(model.User{UserID: "user2", FirstName: "Sam", LastName: "Reed", Company: "Acme Habitats", Email: "sam@example.com"})

	mailer := &captureNotifier{}
	biddingService := bidding.NewBiddingService(repo, mailer, "")
	closingService := closing.NewClosingService(repo, mailer, "")
	router := server.SetupRouter(biddingService, closingService, repo)

	return &testEnv{router: router, repo: repo, notifier: mailer}
}

// SeedOpportunity stores an active opportunity directly in the repository
func (e *testEnv) SeedOpportunity(t *testing.T, id string, closingDate time.Time) {
	t.Helper()
	err := e.repo.CreateOpportunity(model.Opportunity{
		OpportunityID: id,
		Title:         "Opportunity " + id,
		LPA:           "Horsham",
		NCA:           "NCA-121",
		BNGUnitType:   "Area",
		UnitsRequired: 5,
		ClosingDate:   closingDate,
		Status:        model.OpportunityStatusActive,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("failed to seed opportunity: %v", err)
	}
}

// ExecuteRequestAndParse executes an HTTP request on the router and parses
// the response envelope. userID, when non-empty, is sent as the caller's
// identity header.
func (e *testEnv) ExecuteRequestAndParse(t *testing.T, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(server.UserIDHeader, userID)
	}
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data extracts the data object from a response envelope
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}
