package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	model "bidding-platform/internal/models"
	"bidding-platform/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestAdminOnly(t *testing.T) {
	repo := repository.NewMemoryRepo()
	repo.AddUser(model.User{UserID: "admin1", Email: "ops@example.com", IsAdmin: true})
	repo.AddUser(model.User{UserID: "user1", Email: "dana@example.com"})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/guarded", AdminOnly(repo), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": user.UserID})
	})

	tests := []struct {
		name           string
		userID         string
		expectedStatus int
	}{
		{"admin_passes", "admin1", http.StatusOK},
		{"non_admin_forbidden", "user1", http.StatusForbidden},
		{"unknown_user_forbidden", "ghost", http.StatusForbidden},
		{"missing_header_unauthorized", "", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
			if tc.userID != "" {
				req.Header.Set(UserIDHeader, tc.userID)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// The resolved user must be available to handlers behind the gate.
func TestCurrentUser(t *testing.T) {
	repo := repository.NewMemoryRepo()
	repo.AddUser(model.User{UserID: "admin1", Email: "ops@example.com", IsAdmin: true})

	gin.SetMode(gin.TestMode)
	router := gin.New()

	var resolved model.User
	var found bool
	router.POST("/guarded", AdminOnly(repo), func(c *gin.Context) {
		resolved, found = CurrentUser(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(UserIDHeader, "admin1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, found)
	require.Equal(t, "admin1", resolved.UserID)
	require.True(t, resolved.IsAdmin)
}
