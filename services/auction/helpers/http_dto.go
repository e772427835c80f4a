package helpers

import "time"

// Request/Response DTOs
type PlaceBidRequest struct {
	OpportunityID string `json:"opportunity_id" binding:"required"`
	UserID        string `json:"user_id" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

type WithdrawBidRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type CreateOpportunityRequest struct {
	Title         string    `json:"title" binding:"required"`
	LPA           string    `json:"lpa" binding:"required"`
	NCA           string    `json:"nca" binding:"required"`
	BNGUnitType   string    `json:"bng_unit_type" binding:"required"`
	UnitsRequired int       `json:"units_required" binding:"required,gte=1"`
	ClosingDate   time.Time `json:"closing_date" binding:"required"`
}

type BidResponse struct {
	BidID         string `json:"bid_id"`
	OpportunityID string `json:"opportunity_id"`
	UserID        string `json:"user_id"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	IsWinning     bool   `json:"is_winning"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type OpportunityResponse struct {
	OpportunityID    string  `json:"opportunity_id"`
	Title            string  `json:"title"`
	LPA              string  `json:"lpa"`
	NCA              string  `json:"nca"`
	BNGUnitType      string  `json:"bng_unit_type"`
	UnitsRequired    int     `json:"units_required"`
	ClosingDate      string  `json:"closing_date"`
	Status           string  `json:"status"`
	WinningBidID     *string `json:"winning_bid_id,omitempty"`
	WinningBidAmount *int64  `json:"winning_bid_amount,omitempty"`
	ClosedAt         string  `json:"closed_at,omitempty"`
}

type ClosingResultResponse struct {
	Outcome          string `json:"outcome"`
	OpportunityID    string `json:"opportunity_id"`
	WinningBidID     string `json:"winning_bid_id,omitempty"`
	WinningBidAmount int64  `json:"winning_bid_amount,omitempty"`
}
