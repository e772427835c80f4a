package models

import "time"

// Opportunity lifecycle states
const (
	OpportunityStatusActive = "active"
	OpportunityStatusClosed = "closed"
)

// Bid lifecycle states
const (
	BidStatusActive    = "active"
	BidStatusWithdrawn = "withdrawn"
)

// User represents a registered participant on the platform
type User struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// Opportunity represents a time-boxed reverse-auction listing.
// Amounts are whole pounds; the lowest bid wins.
type Opportunity struct {
	OpportunityID    string     `json:"opportunity_id"`
	Title            string     `json:"title"`
	LPA              string     `json:"lpa"`
	NCA              string     `json:"nca"`
	BNGUnitType      string     `json:"bng_unit_type"`
	UnitsRequired    int        `json:"units_required"`
	ClosingDate      time.Time  `json:"closing_date"`
	Status           string     `json:"status"`
	WinningBidID     *string    `json:"winning_bid_id,omitempty"`
	WinningBidAmount *int64     `json:"winning_bid_amount,omitempty"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Bid represents a user's offer on an opportunity
type Bid struct {
	BidID         string    `json:"bid_id"`
	OpportunityID string    `json:"opportunity_id"`
	UserID        string    `json:"user_id"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	IsWinning     bool      `json:"is_winning"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EmailLog records one delivery attempt to one recipient
type EmailLog struct {
	LogID          string    `json:"log_id"`
	Type           string    `json:"type"`
	RecipientEmail string    `json:"recipient_email"`
	Subject        string    `json:"subject"`
	OpportunityID  string    `json:"opportunity_id,omitempty"`
	BidID          string    `json:"bid_id,omitempty"`
	Status         string    `json:"status"`
	Error          string    `json:"error,omitempty"`
	SentAt         time.Time `json:"sent_at"`
}

// ClosingOutcome enumerates the possible results of closing an opportunity
type ClosingOutcome string

const (
	ClosedWithWinner ClosingOutcome = "closed_with_winner"
	ClosedNoBids     ClosingOutcome = "closed_no_bids"
	AlreadyClosed    ClosingOutcome = "already_closed"
)

// ClosingResult is the ephemeral outcome of one closing invocation
type ClosingResult struct {
	Outcome          ClosingOutcome `json:"outcome"`
	OpportunityID    string         `json:"opportunity_id"`
	WinningBidID     string         `json:"winning_bid_id,omitempty"`
	WinningBidAmount int64          `json:"winning_bid_amount,omitempty"`
}
