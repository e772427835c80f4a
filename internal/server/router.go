package server

import (
	bidding "bidding-platform/internal/biddingService"
	closing "bidding-platform/internal/closingService"
	"bidding-platform/internal/repository"
	handler "bidding-platform/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, closingService *closing.ClosingService, repo repository.AuctionDB) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)
	closingHandler := handler.NewClosingHandler(closingService)

	opportunities := router.Group("/opportunities")
	{
		opportunities.GET("", biddingHandler.ListOpportunitiesHandler)
		opportunities.GET("/:opportunity_id", biddingHandler.GetOpportunityHandler)
		opportunities.GET("/:opportunity_id/bids", biddingHandler.GetBidsByOpportunityHandler)
	}

	admin := router.Group("/opportunities", AdminOnly(repo))
	{
		admin.POST("", biddingHandler.CreateOpportunityHandler)
		admin.POST("/:opportunity_id/close", closingHandler.CloseOpportunityHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.RecordBidHandler)
		bids.POST("/:bid_id/withdraw", biddingHandler.WithdrawBidHandler)
	}

	return router
}
