package handler

import (
	"net/http"

	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListRatingsHandler handles GET /:id/rating/
func (h *MarketplaceHandler) ListRatingsHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "ListRatingsHandler", "id")
	if !ok {
		return
	}

	ratings, err := h.service.ListRatings(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "ListRatingsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRatingResponses(ratings), "ratings retrieved successfully")
	helpers.LogSuccess("ListRatingsHandler", "ratings retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(ratings),
	})
}

// RateAuctionHandler handles POST /:id/rating/. A user's second submission
// replaces the first and answers 200 instead of 201.
func (h *MarketplaceHandler) RateAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "RateAuctionHandler", "id")
	if !ok {
		return
	}
	var req helpers.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RateAuctionHandler", err)
		return
	}

	p := helpers.Principal(c)
	result, err := h.service.RateAuction(c.Request.Context(), p, auctionID, *req.Value)
	if err != nil {
		helpers.HandleServiceError(c, "RateAuctionHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    userID(p),
			"value":      *req.Value,
		})
		return
	}

	status, message := http.StatusOK, "rating updated successfully"
	if result.Created {
		status, message = http.StatusCreated, "rating recorded successfully"
	}
	utils.JSONResponse(c, status, helpers.NewRatingWriteResponse(result), message)
	helpers.LogSuccess("RateAuctionHandler", message, map[string]any{
		"rating_id":      result.Rating.ID,
		"auction_id":     auctionID,
		"user_id":        p.UserID,
		"value":          result.Rating.Value,
		"auction_rating": result.AuctionRating,
	})
}

// GetRatingHandler handles GET /:id/ratings/:pk/
func (h *MarketplaceHandler) GetRatingHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "GetRatingHandler", "id")
	if !ok {
		return
	}
	id, ok := helpers.ParseID(c, "GetRatingHandler", "pk")
	if !ok {
		return
	}

	rating, err := h.service.GetRating(c.Request.Context(), helpers.Principal(c), auctionID, id)
	if err != nil {
		helpers.HandleServiceError(c, "GetRatingHandler", err, map[string]any{"auction_id": auctionID, "rating_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRatingResponse(rating), "rating retrieved successfully")
}

// UpdateRatingHandler handles PUT /:id/ratings/:pk/
func (h *MarketplaceHandler) UpdateRatingHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "UpdateRatingHandler", "id")
	if !ok {
		return
	}
	id, ok := helpers.ParseID(c, "UpdateRatingHandler", "pk")
	if !ok {
		return
	}
	var req helpers.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateRatingHandler", err)
		return
	}

	p := helpers.Principal(c)
	result, err := h.service.UpdateRating(c.Request.Context(), p, auctionID, id, *req.Value)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateRatingHandler", err, map[string]any{
			"auction_id": auctionID,
			"rating_id":  id,
			"user_id":    userID(p),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRatingWriteResponse(result), "rating updated successfully")
	helpers.LogSuccess("UpdateRatingHandler", "rating updated successfully", map[string]any{
		"rating_id":      result.Rating.ID,
		"auction_rating": result.AuctionRating,
	})
}

// DeleteRatingHandler handles DELETE /:id/ratings/:pk/
func (h *MarketplaceHandler) DeleteRatingHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "DeleteRatingHandler", "id")
	if !ok {
		return
	}
	id, ok := helpers.ParseID(c, "DeleteRatingHandler", "pk")
	if !ok {
		return
	}

	p := helpers.Principal(c)
	avg, err := h.service.DeleteRating(c.Request.Context(), p, auctionID, id)
	if err != nil {
		helpers.HandleServiceError(c, "DeleteRatingHandler", err, map[string]any{
			"auction_id": auctionID,
			"rating_id":  id,
			"user_id":    userID(p),
		})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteRatingHandler", "rating deleted successfully", map[string]any{
		"auction_id":     auctionID,
		"rating_id":      id,
		"auction_rating": avg,
	})
}

// GetUserRatingHandler handles GET /:id/rating/user/
func (h *MarketplaceHandler) GetUserRatingHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "GetUserRatingHandler", "id")
	if !ok {
		return
	}

	p := helpers.Principal(c)
	rating, err := h.service.GetUserRating(c.Request.Context(), p, auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetUserRatingHandler", err, map[string]any{"auction_id": auctionID, "user_id": userID(p)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRatingResponse(rating), "rating retrieved successfully")
}
