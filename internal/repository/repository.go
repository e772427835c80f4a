package repository

import (
	"bidding-platform/internal/auctionerrors"
	model "bidding-platform/internal/models"
	"fmt"
	"sort"
	"sync"
	"time"
)

// AuctionDB defines the storage interface for the bidding platform
type AuctionDB interface {
	// Opportunities
	CreateOpportunity(opp model.Opportunity) error
	GetOpportunity(opportunityID string) (model.Opportunity, error)
	ListOpportunitiesByStatus(status string) ([]model.Opportunity, error)
	ListOverdueOpportunities(now time.Time) ([]model.Opportunity, error)
	ListOpportunitiesClosingBetween(from, to time.Time) ([]model.Opportunity, error)
	// ConditionalCloseOpportunity transitions an opportunity to closed iff
	// its status is still active at write time. Losing the race returns
	// auctionerrors.ErrOpportunityClosed.
	ConditionalCloseOpportunity(opportunityID string, closedAt time.Time, winningBidID *string, winningBidAmount *int64) error

	// Bids
	RecordBidForOpportunity(bid model.Bid) error
	GetBid(bidID string) (model.Bid, error)
	GetBidsByOpportunity(opportunityID string) ([]model.Bid, error)
	GetActiveBidByUser(opportunityID, userID string) (model.Bid, error)
	UpdateBidAmount(bidID string, amount int64, updatedAt time.Time) error
	WithdrawBid(bidID string, updatedAt time.Time) error
	MarkBidWinning(bidID string, updatedAt time.Time) error

	// Users
	GetUser(userID string) (model.User, error)
	ListUsers(isAdmin *bool) ([]model.User, error)

	// Email delivery audit trail
	RecordEmailLog(entry model.EmailLog) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu            sync.RWMutex
	opportunities map[string]model.Opportunity // key: opportunityID
	bids          map[string]model.Bid         // key: bidID
	oppBids       map[string][]string          // key: opportunityID -> value: ordered bidIDs
	users         map[string]model.User        // key: userID
	emailLogs     []model.EmailLog
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		opportunities: make(map[string]model.Opportunity),
		bids:          make(map[string]model.Bid),
		oppBids:       make(map[string][]string),
		users:         make(map[string]model.User),
	}
}

// CreateOpportunity stores a new opportunity
func (r *MemoryRepo) CreateOpportunity(opp model.Opportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.opportunities[opp.OpportunityID]; exists {
		return fmt.Errorf("create opportunity %s: already exists", opp.OpportunityID)
	}
	r.opportunities[opp.OpportunityID] = opp
	return nil
}

// GetOpportunity returns a single opportunity by id
func (r *MemoryRepo) GetOpportunity(opportunityID string) (model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opp, ok := r.opportunities[opportunityID]
	if !ok {
		return model.Opportunity{}, fmt.Errorf("get opportunity %s: %w", opportunityID, auctionerrors.ErrOpportunityNotFound)
	}
	return opp, nil
}

// ListOpportunitiesByStatus returns all opportunities in the given status,
// or all opportunities when status is empty
func (r *MemoryRepo) ListOpportunitiesByStatus(status string) ([]model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opps := make([]model.Opportunity, 0)
	for _, opp := range r.opportunities {
		if status == "" || opp.Status == status {
			opps = append(opps, opp)
		}
	}
	sortOpportunities(opps)
	return opps, nil
}

// ListOverdueOpportunities returns active opportunities whose closing date
// is at or before now
func (r *MemoryRepo) ListOverdueOpportunities(now time.Time) ([]model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opps := make([]model.Opportunity, 0)
	for _, opp := range r.opportunities {
		if opp.Status == model.OpportunityStatusActive && !opp.ClosingDate.After(now) {
			opps = append(opps, opp)
		}
	}
	sortOpportunities(opps)
	return opps, nil
}

// ListOpportunitiesClosingBetween returns active opportunities closing
// within [from, to]
func (r *MemoryRepo) ListOpportunitiesClosingBetween(from, to time.Time) ([]model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opps := make([]model.Opportunity, 0)
	for _, opp := range r.opportunities {
		if opp.Status != model.OpportunityStatusActive {
			continue
		}
		if opp.ClosingDate.Before(from) || opp.ClosingDate.After(to) {
			continue
		}
		opps = append(opps, opp)
	}
	sortOpportunities(opps)
	return opps, nil
}

// ConditionalCloseOpportunity closes the opportunity iff it is still active.
// The status check and the write happen under one lock, so exactly one
// concurrent caller can succeed.
func (r *MemoryRepo) ConditionalCloseOpportunity(opportunityID string, closedAt time.Time, winningBidID *string, winningBidAmount *int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	opp, ok := r.opportunities[opportunityID]
	if !ok {
		return fmt.Errorf("close opportunity %s: %w", opportunityID, auctionerrors.ErrOpportunityNotFound)
	}
	if opp.Status != model.OpportunityStatusActive {
		return fmt.Errorf("close opportunity %s: %w", opportunityID, auctionerrors.ErrOpportunityClosed)
	}

	opp.Status = model.OpportunityStatusClosed
	opp.ClosedAt = &closedAt
	opp.WinningBidID = winningBidID
	opp.WinningBidAmount = winningBidAmount
	r.opportunities[opportunityID] = opp
	return nil
}

// RecordBidForOpportunity records a new bid against an opportunity
func (r *MemoryRepo) RecordBidForOpportunity(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.opportunities[bid.OpportunityID]; !ok {
		return fmt.Errorf("record bid for opportunity %s: %w", bid.OpportunityID, auctionerrors.ErrOpportunityNotFound)
	}

	r.bids[bid.BidID] = bid
	r.oppBids[bid.OpportunityID] = append(r.oppBids[bid.OpportunityID], bid.BidID)
	return nil
}

// GetBid returns a single bid by id
func (r *MemoryRepo) GetBid(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

// GetBidsByOpportunity returns all bids for an opportunity, including
// withdrawn ones, reflecting current status rather than a cached snapshot
func (r *MemoryRepo) GetBidsByOpportunity(opportunityID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.oppBids[opportunityID]
	bids := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		if bid, ok := r.bids[id]; ok {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

// GetActiveBidByUser returns the user's live bid on an opportunity, if any
func (r *MemoryRepo) GetActiveBidByUser(opportunityID, userID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *model.Bid
	for _, id := range r.oppBids[opportunityID] {
		bid, ok := r.bids[id]
		if !ok || bid.UserID != userID || bid.Status != model.BidStatusActive {
			continue
		}
		// most recently updated record is authoritative
		if found == nil || bid.UpdatedAt.After(found.UpdatedAt) {
			b := bid
			found = &b
		}
	}
	if found == nil {
		return model.Bid{}, fmt.Errorf("get active bid for user %s on opportunity %s: %w", userID, opportunityID, auctionerrors.ErrBidNotFound)
	}
	return *found, nil
}

// UpdateBidAmount replaces the amount of an existing bid
func (r *MemoryRepo) UpdateBidAmount(bidID string, amount int64, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return fmt.Errorf("update bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	bid.Amount = amount
	bid.UpdatedAt = updatedAt
	r.bids[bidID] = bid
	return nil
}

// WithdrawBid flips a bid's status to withdrawn
func (r *MemoryRepo) WithdrawBid(bidID string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return fmt.Errorf("withdraw bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	bid.Status = model.BidStatusWithdrawn
	bid.UpdatedAt = updatedAt
	r.bids[bidID] = bid
	return nil
}

// MarkBidWinning flags the selected bid after a closure
func (r *MemoryRepo) MarkBidWinning(bidID string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return fmt.Errorf("mark bid %s winning: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	bid.IsWinning = true
	bid.UpdatedAt = updatedAt
	r.bids[bidID] = bid
	return nil
}

// GetUser returns a single user by id
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// ListUsers returns users, optionally filtered by their admin flag
func (r *MemoryRepo) ListUsers(isAdmin *bool) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		if isAdmin != nil && user.IsAdmin != *isAdmin {
			continue
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

// RecordEmailLog appends a delivery attempt to the audit trail
func (r *MemoryRepo) RecordEmailLog(entry model.EmailLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.emailLogs = append(r.emailLogs, entry)
	return nil
}

// EmailLogs returns a snapshot of the delivery audit trail. This method is
// intended for tests only.
func (r *MemoryRepo) EmailLogs() []model.EmailLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.EmailLog(nil), r.emailLogs...)
}

// AddUser adds a user to the repository. This method is intended for
// seeding and tests only.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}

func sortOpportunities(opps []model.Opportunity) {
	sort.Slice(opps, func(i, j int) bool {
		if opps[i].ClosingDate.Equal(opps[j].ClosingDate) {
			return opps[i].OpportunityID < opps[j].OpportunityID
		}
		return opps[i].ClosingDate.Before(opps[j].ClosingDate)
	})
}
