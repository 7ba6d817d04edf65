package server

import (
	auction "auctionhouse/internal/auctionService"
	"auctionhouse/internal/livefeed"
	"auctionhouse/internal/notifier"
	review "auctionhouse/internal/reviewService"
	auctionhandler "auctionhouse/services/auction/handler"
	notificationhandler "auctionhouse/services/notification/handler"
	reviewhandler "auctionhouse/services/review/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	auctionService *auction.AuctionService,
	reviewService *review.ReviewService,
	notificationService *notifier.NotificationService,
	hub *livefeed.Hub,
	jwtSecret string,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	authRequired := AuthRequired(jwtSecret)

	auctionHandler := auctionhandler.NewAuctionHandler(auctionService)
	liveHandler := auctionhandler.NewLiveHandler(hub)
	reviewHandler := reviewhandler.NewReviewHandler(reviewService)
	notificationHandler := notificationhandler.NewNotificationHandler(notificationService)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/live", liveHandler.LiveFeedHandler)
		auctions.POST("/bid", authRequired, auctionHandler.RecordBidHandler)
		auctions.POST("/close-expired", auctionHandler.CloseExpiredHandler)
	}

	reviews := router.Group("/reviews")
	{
		reviews.GET("/seller/:seller_id", reviewHandler.GetSellerReviewsHandler)
		reviews.POST("", authRequired, reviewHandler.CreateReviewHandler)
	}

	notifications := router.Group("/notifications", authRequired)
	{
		notifications.GET("", notificationHandler.GetNotificationsHandler)
		notifications.POST("/read", notificationHandler.MarkAllReadHandler)
	}

	return router
}
