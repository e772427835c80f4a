package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bidding-platform/internal/auctionerrors"
	model "bidding-platform/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test CloseOpportunityHandler
func TestCloseOpportunityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockClosingServiceInterface(ctrl)
	handler := NewClosingHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/opportunities/:opportunity_id/close", handler.CloseOpportunityHandler)

	tests := []struct {
		name           string
		opportunityID  string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:          "closed_with_winner",
			opportunityID: "opp1",
			mockSetup: func() {
				mockService.EXPECT().
					Close("opp1").
					Return(model.ClosingResult{
						Outcome:          model.ClosedWithWinner,
						OpportunityID:    "opp1",
						WinningBidID:     "bid2",
						WinningBidAmount: 4800,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "opportunity closed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, string(model.ClosedWithWinner), data["outcome"])
				require.Equal(t, "bid2", data["winning_bid_id"])
				require.Equal(t, float64(4800), data["winning_bid_amount"])
			},
		},
		{
			name:          "closed_no_bids",
			opportunityID: "opp2",
			mockSetup: func() {
				mockService.EXPECT().
					Close("opp2").
					Return(model.ClosingResult{
						Outcome:       model.ClosedNoBids,
						OpportunityID: "opp2",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "opportunity closed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, string(model.ClosedNoBids), data["outcome"])
				// no winner fields for an empty closure
				require.NotContains(t, data, "winning_bid_id")
			},
		},
		{
			// a repeat close is not an error, the response just says so
			name:          "already_closed",
			opportunityID: "opp3",
			mockSetup: func() {
				mockService.EXPECT().
					Close("opp3").
					Return(model.ClosingResult{
						Outcome:       model.AlreadyClosed,
						OpportunityID: "opp3",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "opportunity was already closed",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, string(model.AlreadyClosed), data["outcome"])
			},
		},
		{
			name:          "opportunity_not_found",
			opportunityID: "missing",
			mockSetup: func() {
				mockService.EXPECT().
					Close("missing").
					Return(model.ClosingResult{}, auctionerrors.ErrOpportunityNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "opportunity not found",
		},
		{
			name:          "service_generic_error",
			opportunityID: "opp4",
			mockSetup: func() {
				mockService.EXPECT().
					Close("opp4").
					Return(model.ClosingResult{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/opportunities/"+tc.opportunityID+"/close", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}
