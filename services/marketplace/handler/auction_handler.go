package handler

import (
	"net/http"

	marketplace "auction-marketplace/internal/marketplaceService"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListAuctionsHandler handles GET / with optional search, category, price_min and price_max
func (h *MarketplaceHandler) ListAuctionsHandler(c *gin.Context) {
	q := marketplace.AuctionQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		PriceMin: c.Query("price_min"),
		PriceMax: c.Query("price_max"),
	}

	auctions, err := h.service.ListAuctions(c.Request.Context(), q)
	if err != nil {
		helpers.HandleServiceError(c, "ListAuctionsHandler", err, map[string]any{"query": c.Request.URL.RawQuery})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponses(auctions), "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"query": c.Request.URL.RawQuery,
		"count": len(auctions),
	})
}

// CreateAuctionHandler handles POST /
func (h *MarketplaceHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", err, nil)
		return
	}

	p := helpers.Principal(c)
	auction, err := h.service.CreateAuction(c.Request.Context(), p, in)
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", err, map[string]any{"user_id": userID(p)})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":   auction.ID,
		"auctioneer":   auction.AuctioneerID,
		"closing_date": helpers.FormatTime(auction.ClosingDate),
	})
}

// GetAuctionHandler handles GET /:id/
func (h *MarketplaceHandler) GetAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetAuctionHandler", "id")
	if !ok {
		return
	}

	auction, err := h.service.GetAuction(c.Request.Context(), id)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(auction), "auction retrieved successfully")
}

// UpdateAuctionHandler handles PUT /:id/
func (h *MarketplaceHandler) UpdateAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "UpdateAuctionHandler", "id")
	if !ok {
		return
	}
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		helpers.HandleServiceError(c, "UpdateAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}

	p := helpers.Principal(c)
	auction, err := h.service.UpdateAuction(c.Request.Context(), p, id, in)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateAuctionHandler", err, map[string]any{"auction_id": id, "user_id": userID(p)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(auction), "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id": auction.ID,
		"user_id":    p.UserID,
	})
}

// DeleteAuctionHandler handles DELETE /:id/
func (h *MarketplaceHandler) DeleteAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "DeleteAuctionHandler", "id")
	if !ok {
		return
	}

	p := helpers.Principal(c)
	if err := h.service.DeleteAuction(c.Request.Context(), p, id); err != nil {
		helpers.HandleServiceError(c, "DeleteAuctionHandler", err, map[string]any{"auction_id": id, "user_id": userID(p)})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{"auction_id": id})
}

// ListUserAuctionsHandler handles GET /users/ and GET /myAuctions/
func (h *MarketplaceHandler) ListUserAuctionsHandler(c *gin.Context) {
	p := helpers.Principal(c)
	auctions, err := h.service.ListUserAuctions(c.Request.Context(), p)
	if err != nil {
		helpers.HandleServiceError(c, "ListUserAuctionsHandler", err, map[string]any{"user_id": userID(p)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponses(auctions), "auctions retrieved successfully")
	helpers.LogSuccess("ListUserAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"user_id": p.UserID,
		"count":   len(auctions),
	})
}
