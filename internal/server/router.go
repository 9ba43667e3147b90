package server

import (
	auction "smart-auction/internal/auctionService"
	model "smart-auction/internal/models"
	handler "smart-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// WSHandler is the realtime endpoint plugged into the router; nil
// disables the /ws route (tests run without a live hub).
type WSHandler interface {
	ServeWS(c *gin.Context)
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, ws WSHandler) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(IdentityMiddleware)      // caller identity from the auth gateway

	auctionHandler := handler.NewAuctionHandler(auctionService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", RequireAuth, RequireRole(model.RoleSeller, model.RoleAdmin), auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bid", RequireAuth, auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/request-access", RequireAuth, auctionHandler.RequestAccessHandler)
		auctions.POST("/:auction_id/approve", RequireAuth, RequireRole(model.RoleSeller, model.RoleAdmin), auctionHandler.ApproveBidderHandler)
		auctions.POST("/:auction_id/approve-all", RequireAuth, RequireRole(model.RoleSeller, model.RoleAdmin), auctionHandler.ApproveAllBiddersHandler)
	}

	if ws != nil {
		router.GET("/ws", ws.ServeWS)
	}

	return router
}
