package server

import (
	"net/http"
	"time"

	handler "auction-marketplace/services/marketplace/handler"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Options configures the HTTP surface
type Options struct {
	BasePath  string
	JWTSecret string

	// Redis enables write rate limiting when set
	Redis             *redis.Client
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.MarketplaceServiceInterface, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlation id
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"}, "service healthy")
	})

	api := router.Group(opts.BasePath)
	api.Use(Authenticate(opts.JWTSecret))
	if opts.Redis != nil {
		api.Use(RateLimit(opts.Redis, opts.RateLimitRequests, opts.RateLimitWindow))
	}
	api.Use(RequireAuthForWrites)

	h := handler.NewMarketplaceHandler(service)

	categories := api.Group("/categories")
	{
		categories.GET("/", h.ListCategoriesHandler)
		categories.POST("/", h.CreateCategoryHandler)
		categories.GET("/:id/", h.GetCategoryHandler)
		categories.PUT("/:id/", h.UpdateCategoryHandler)
		categories.DELETE("/:id/", h.DeleteCategoryHandler)
	}

	api.GET("/users/", h.ListUserAuctionsHandler)
	api.GET("/myAuctions/", h.ListUserAuctionsHandler)

	api.GET("/", h.ListAuctionsHandler)
	api.POST("/", h.CreateAuctionHandler)

	auction := api.Group("/:id")
	{
		auction.GET("/", h.GetAuctionHandler)
		auction.PUT("/", h.UpdateAuctionHandler)
		auction.DELETE("/", h.DeleteAuctionHandler)

		auction.GET("/bid/", h.ListBidsHandler)
		auction.POST("/bid/", h.PlaceBidHandler)
		auction.GET("/bid/:pk/", h.GetBidHandler)
		auction.PUT("/bid/:pk/", h.UpdateBidHandler)
		auction.DELETE("/bid/:pk/", h.DeleteBidHandler)

		auction.GET("/comments/", h.ListCommentsHandler)
		auction.POST("/comments/", h.CreateCommentHandler)
		auction.GET("/comments/:pk/", h.GetCommentHandler)
		auction.PUT("/comments/:pk/", h.UpdateCommentHandler)
		auction.DELETE("/comments/:pk/", h.DeleteCommentHandler)

		auction.GET("/rating/", h.ListRatingsHandler)
		auction.POST("/rating/", h.RateAuctionHandler)
		auction.GET("/rating/user/", h.GetUserRatingHandler)
		auction.GET("/ratings/:pk/", h.GetRatingHandler)
		auction.PUT("/ratings/:pk/", h.UpdateRatingHandler)
		auction.DELETE("/ratings/:pk/", h.DeleteRatingHandler)
	}

	return router
}
