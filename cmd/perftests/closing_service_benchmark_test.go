package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	bidding "bidding-platform/internal/biddingService"
	closing "bidding-platform/internal/closingService"
	model "bidding-platform/internal/models"
	repository "bidding-platform/internal/repository"
)

// noopNotifier swallows all outbound email so benchmarks measure the
// services, not a mail transport
type noopNotifier struct{}

func (noopNotifier) Send(recipientEmail, subject, htmlContent, textContent string) error {
	return nil
}

func seedUsers(repo *repository.MemoryRepo, n int) {
	for i := 0; i < n; i++ {
		repo.AddUser(model.User{
			UserID:    fmt.Sprintf("user_%d", i),
			FirstName: "Load",
			LastName:  fmt.Sprintf("User%d", i),
			Email:     fmt.Sprintf("user_%d@example.com", i),
		})
	}
}

func seedOpportunities(repo *repository.MemoryRepo, n int) {
	closingDate := time.Now().UTC().Add(24 * time.Hour)
	for i := 0; i < n; i++ {
		_ = repo.CreateOpportunity(model.Opportunity{
			OpportunityID: fmt.Sprintf("opp_%d", i),
			Title:         fmt.Sprintf("Benchmark Opportunity %d", i),
			LPA:           "Horsham",
			NCA:           "NCA-121",
			BNGUnitType:   "Area",
			UnitsRequired: 5,
			ClosingDate:   closingDate,
			Status:        model.OpportunityStatusActive,
			CreatedAt:     time.Now().UTC(),
		})
	}
}

// Benchmark 1: PlaceBid - Isolated Opportunities (Low Contention)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, noopNotifier{}, "")

	seedUsers(repo, b.N)
	seedOpportunities(repo, b.N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		userID := fmt.Sprintf("user_%d", i)
		oppID := fmt.Sprintf("opp_%d", i)
		amount := int64(100 * (1 + rand.Intn(100)))
		if _, err := svc.PlaceBid(oppID, userID, amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Opportunity (High Contention)
func Benchmark_PlaceBid_ConcurrentSharedOpportunity(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, noopNotifier{}, "")

	const userPool = 256
	seedUsers(repo, userPool)
	seedOpportunities(repo, 1)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := fmt.Sprintf("user_%d", rnd.Intn(userPool))
			amount := int64(100 * (1 + rnd.Intn(100)))
			_, _ = svc.PlaceBid("opp_0", userID, amount)
		}
	})
}

// Benchmark 3: Close - Isolated Opportunities (winner selection + commit)
func Benchmark_Close_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	biddingSvc := bidding.NewBiddingService(repo, noopNotifier{}, "")
	closingSvc := closing.NewClosingService(repo, noopNotifier{}, "")

	const bidsPerOpportunity = 10
	seedUsers(repo, bidsPerOpportunity)
	seedOpportunities(repo, b.N)

	for i := 0; i < b.N; i++ {
		oppID := fmt.Sprintf("opp_%d", i)
		for j := 0; j < bidsPerOpportunity; j++ {
			userID := fmt.Sprintf("user_%d", j)
			amount := int64(100 * (1 + j))
			if _, err := biddingSvc.PlaceBid(oppID, userID, amount); err != nil {
				b.Fatalf("failed to seed bid: %v", err)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		oppID := fmt.Sprintf("opp_%d", i)
		result, err := closingSvc.Close(oppID)
		if err != nil {
			b.Fatalf("failed to close opportunity: %v", err)
		}
		if result.Outcome != model.ClosedWithWinner {
			b.Fatalf("unexpected outcome %s for %s", result.Outcome, oppID)
		}
	}
}

// Benchmark 4: Close - Concurrent closers draining a shared pool. Every
// opportunity ends up closed exactly once; racing callers observe
// AlreadyClosed.
func Benchmark_Close_ConcurrentPool(b *testing.B) {
	repo := repository.NewMemoryRepo()
	biddingSvc := bidding.NewBiddingService(repo, noopNotifier{}, "")
	closingSvc := closing.NewClosingService(repo, noopNotifier{}, "")

	const userPool = 8
	seedUsers(repo, userPool)
	seedOpportunities(repo, b.N)

	for i := 0; i < b.N; i++ {
		oppID := fmt.Sprintf("opp_%d", i)
		for j := 0; j < userPool; j++ {
			_, _ = biddingSvc.PlaceBid(oppID, fmt.Sprintf("user_%d", j), int64(100*(1+j)))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	var next int64 = -1
	var committed int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			// two goroutines contend for each opportunity
			idx := atomic.AddInt64(&next, 1) / 2 % int64(b.N)
			oppID := fmt.Sprintf("opp_%d", idx)
			result, err := closingSvc.Close(oppID)
			if err != nil {
				b.Fatalf("failed to close opportunity: %v", err)
			}
			if result.Outcome == model.ClosedWithWinner {
				atomic.AddInt64(&committed, 1)
			}
		}
	})

	b.Logf("committed closures: %d of %d opportunities", committed, b.N)
}

// Benchmark 5: Mixed Workload (bid placements + bid listings concurrently)
func Benchmark_MixedWorkload_SharedOpportunity(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, noopNotifier{}, "")

	const userPool = 64
	seedUsers(repo, userPool)
	seedOpportunities(repo, 1)

	for j := 0; j < userPool/2; j++ {
		_, _ = svc.PlaceBid("opp_0", fmt.Sprintf("user_%d", j), int64(100*(1+j)))
	}

	b.ReportAllocs()
	b.ResetTimer()

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				userID := fmt.Sprintf("user_%d", rnd.Intn(userPool))
				amount := int64(100 * (1 + rnd.Intn(100)))
				_, _ = svc.PlaceBid("opp_0", userID, amount)
			default:
				if _, err := svc.GetBidsForOpportunity("opp_0"); err != nil {
					b.Fatalf("failed to list bids: %v", err)
				}
			}
		}
	})
}
