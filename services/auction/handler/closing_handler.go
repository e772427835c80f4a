package handler

import (
	"fmt"
	"net/http"

	model "bidding-platform/internal/models"
	"bidding-platform/services/auction/helpers"
	"bidding-platform/utils"

	"github.com/gin-gonic/gin"
)

type ClosingServiceInterface interface {
	Close(opportunityID string) (model.ClosingResult, error)
}

type ClosingHandler struct {
	service ClosingServiceInterface
}

func NewClosingHandler(service ClosingServiceInterface) *ClosingHandler {
	return &ClosingHandler{service: service}
}

// CloseOpportunityHandler handles POST /opportunities/:opportunity_id/close.
// The admin gate runs in middleware before this handler; racing a
// scheduler tick is safe because the closing service's conditional
// transition lets only one caller commit.
func (h *ClosingHandler) CloseOpportunityHandler(c *gin.Context) {
	opportunityID := c.Param("opportunity_id")

	result, err := h.service.Close(opportunityID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CloseOpportunityHandler: failed to close opportunity", map[string]any{
			"opportunity_id": opportunityID,
			"error":          err.Error(),
		})
		return
	}

	message := "opportunity closed successfully"
	if result.Outcome == model.AlreadyClosed {
		message = "opportunity was already closed"
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToClosingResultResponse(result), message)
	helpers.LogSuccess("CloseOpportunityHandler", message, map[string]any{
		"opportunity_id": opportunityID,
		"outcome":        string(result.Outcome),
	})
}
