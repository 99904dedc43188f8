package server

import (
	auction "auction-engine/internal/auctionService"
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	lots := router.Group("/lots")
	{
		lots.POST("", auctionHandler.CreateLotHandler)
		lots.GET("", auctionHandler.ListLotsHandler)
		lots.GET("/:lot_id", auctionHandler.GetLotHandler)
		lots.GET("/:lot_id/bids", auctionHandler.GetBidsByLotHandler)
		lots.GET("/:lot_id/minimum", auctionHandler.GetMinimumBidHandler)
		lots.POST("/:lot_id/cancel", auctionHandler.CancelLotHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
		bids.PATCH("/:bid_id", auctionHandler.EditBidHandler)
		bids.POST("/:bid_id/cancel", auctionHandler.CancelBidHandler)
		bids.POST("/:bid_id/accept", auctionHandler.AcceptBidHandler)
	}

	return router
}
