package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"bidding-platform/internal/auctionerrors"
	model "bidding-platform/internal/models"
	"bidding-platform/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrOpportunityNotFound):
		return http.StatusNotFound, "opportunity not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrOpportunityClosed):
		return http.StatusConflict, "opportunity already closed"
	case errors.Is(err, auctionerrors.ErrBidBelowMinimum):
		return http.StatusBadRequest, "bid amount below minimum"
	case errors.Is(err, auctionerrors.ErrBidNotIncrement):
		return http.StatusBadRequest, "bid amount not a valid increment"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrNotBidOwner):
		return http.StatusForbidden, "bid belongs to another user"
	case errors.Is(err, auctionerrors.ErrPermissionDenied):
		return http.StatusForbidden, "administrator privileges required"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToBidResponse converts a bid model into its HTTP representation
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:         bid.BidID,
		OpportunityID: bid.OpportunityID,
		UserID:        bid.UserID,
		Amount:        bid.Amount,
		Status:        bid.Status,
		IsWinning:     bid.IsWinning,
		CreatedAt:     bid.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     bid.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToOpportunityResponse converts an opportunity model into its HTTP representation
func ToOpportunityResponse(opp model.Opportunity) OpportunityResponse {
	resp := OpportunityResponse{
		OpportunityID:    opp.OpportunityID,
		Title:            opp.Title,
		LPA:              opp.LPA,
		NCA:              opp.NCA,
		BNGUnitType:      opp.BNGUnitType,
		UnitsRequired:    opp.UnitsRequired,
		ClosingDate:      opp.ClosingDate.UTC().Format(time.RFC3339),
		Status:           opp.Status,
		WinningBidID:     opp.WinningBidID,
		WinningBidAmount: opp.WinningBidAmount,
	}
	if opp.ClosedAt != nil {
		resp.ClosedAt = opp.ClosedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// ToClosingResultResponse converts a closing result into its HTTP representation
func ToClosingResultResponse(result model.ClosingResult) ClosingResultResponse {
	return ClosingResultResponse{
		Outcome:          string(result.Outcome),
		OpportunityID:    result.OpportunityID,
		WinningBidID:     result.WinningBidID,
		WinningBidAmount: result.WinningBidAmount,
	}
}
