package handler

import (
	"fmt"
	"net/http"
	"time"

	model "bidding-platform/internal/models"
	"bidding-platform/services/auction/helpers"
	"bidding-platform/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	CreateOpportunity(title, lpa, nca, bngUnitType string, unitsRequired int, closingDate time.Time) (model.Opportunity, error)
	ListOpportunities(status string) ([]model.Opportunity, error)
	GetOpportunity(opportunityID string) (model.Opportunity, error)
	PlaceBid(opportunityID, userID string, amount int64) (model.Bid, error)
	WithdrawBid(bidID, userID string) (model.Bid, error)
	GetBidsForOpportunity(opportunityID string) ([]model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// CreateOpportunityHandler handles POST /opportunities
func (h *BiddingHandler) CreateOpportunityHandler(c *gin.Context) {
	var req helpers.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateOpportunityHandler", err)
		return
	}

	opp, err := h.service.CreateOpportunity(req.Title, req.LPA, req.NCA, req.BNGUnitType, req.UnitsRequired, req.ClosingDate)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateOpportunityHandler: failed to create opportunity", map[string]any{
			"title": req.Title,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToOpportunityResponse(opp), "opportunity created successfully")
	helpers.LogSuccess("CreateOpportunityHandler", "opportunity created successfully", map[string]any{
		"opportunity_id": opp.OpportunityID,
		"title":          opp.Title,
		"closing_date":   opp.ClosingDate,
	})
}

// ListOpportunitiesHandler handles GET /opportunities
func (h *BiddingHandler) ListOpportunitiesHandler(c *gin.Context) {
	status := c.Query("status")
	opps, err := h.service.ListOpportunities(status)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListOpportunitiesHandler: error listing opportunities", map[string]any{"status": status, "error": err.Error()})
		return
	}

	resp := make([]helpers.OpportunityResponse, 0, len(opps))
	for _, opp := range opps {
		resp = append(resp, helpers.ToOpportunityResponse(opp))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "opportunities retrieved successfully")
}

// GetOpportunityHandler handles GET /opportunities/:opportunity_id
func (h *BiddingHandler) GetOpportunityHandler(c *gin.Context) {
	opportunityID := c.Param("opportunity_id")
	opp, err := h.service.GetOpportunity(opportunityID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetOpportunityHandler: error retrieving opportunity", map[string]any{"opportunity_id": opportunityID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToOpportunityResponse(opp), "opportunity retrieved successfully")
}

// RecordBidHandler handles POST /bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.OpportunityID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RecordBidHandler: failed to record bid", map[string]any{
			"handler":        "RecordBidHandler",
			"opportunity_id": req.OpportunityID,
			"user_id":        req.UserID,
			"error":          err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":         bid.BidID,
		"opportunity_id": bid.OpportunityID,
		"user_id":        req.UserID,
		"amount":         bid.Amount,
	})
}

// WithdrawBidHandler handles POST /bids/:bid_id/withdraw
func (h *BiddingHandler) WithdrawBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")

	var req helpers.WithdrawBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawBidHandler", err)
		return
	}

	bid, err := h.service.WithdrawBid(bidID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("WithdrawBidHandler: failed to withdraw bid", map[string]any{
			"bid_id":  bidID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid withdrawn successfully")
	helpers.LogSuccess("WithdrawBidHandler", "bid withdrawn successfully", map[string]any{
		"bid_id":  bid.BidID,
		"user_id": req.UserID,
	})
}

// GetBidsByOpportunityHandler handles GET /opportunities/:opportunity_id/bids
func (h *BiddingHandler) GetBidsByOpportunityHandler(c *gin.Context) {
	opportunityID := c.Param("opportunity_id")
	bids, err := h.service.GetBidsForOpportunity(opportunityID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByOpportunityHandler: error retrieving bids", map[string]any{"opportunity_id": opportunityID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByOpportunityHandler", "bids retrieved successfully", map[string]any{
		"opportunity_id": opportunityID,
		"count":          len(resp),
	})
}
