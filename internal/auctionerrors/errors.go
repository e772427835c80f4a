package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrBidNotFound         = errors.New("bid not found")
	ErrUserNotFound        = errors.New("user not found")

	// ErrOpportunityClosed doubles as the conditional-close condition
	// failure: the opportunity was no longer active at write time.
	ErrOpportunityClosed = errors.New("opportunity already closed")
)

// business logic errors
var (
	ErrInvalidBid       = errors.New("invalid bid")
	ErrBidBelowMinimum  = errors.New("bid amount below minimum")
	ErrBidNotIncrement  = errors.New("bid amount not a valid increment")
	ErrNotBidOwner      = errors.New("bid belongs to another user")
	ErrPermissionDenied = errors.New("administrator privileges required")
)
