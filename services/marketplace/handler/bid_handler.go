package handler

import (
	"net/http"

	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListBidsHandler handles GET /:id/bid/
func (h *MarketplaceHandler) ListBidsHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "ListBidsHandler", "id")
	if !ok {
		return
	}

	bids, err := h.service.ListBids(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "ListBidsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidSummaryResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// PlaceBidHandler handles POST /:id/bid/
func (h *MarketplaceHandler) PlaceBidHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "PlaceBidHandler", "id")
	if !ok {
		return
	}
	var req helpers.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	p := helpers.Principal(c)
	bid, err := h.service.PlaceBid(c.Request.Context(), p, auctionID, req.Price)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    userID(p),
			"price":      req.Price,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionID,
		"user_id":    bid.BidderID,
		"price":      bid.Price,
	})
}

// GetBidHandler handles GET /:id/bid/:pk/
func (h *MarketplaceHandler) GetBidHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "GetBidHandler", "id")
	if !ok {
		return
	}
	id, ok := helpers.ParseID(c, "GetBidHandler", "pk")
	if !ok {
		return
	}

	bid, err := h.service.GetBid(c.Request.Context(), auctionID, id)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidHandler", err, map[string]any{"auction_id": auctionID, "bid_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid retrieved successfully")
}

// UpdateBidHandler handles PUT /:id/bid/:pk/
func (h *MarketplaceHandler) UpdateBidHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "UpdateBidHandler", "id")
	if !ok {
		return
	}
	id, ok := helpers.ParseID(c, "UpdateBidHandler", "pk")
	if !ok {
		return
	}
	var req helpers.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	p := helpers.Principal(c)
	bid, err := h.service.UpdateBid(c.Request.Context(), p, auctionID, id, req.Price)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"bid_id":     id,
			"user_id":    userID(p),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid updated successfully")
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{
		"bid_id": bid.ID,
		"price":  bid.Price,
	})
}

// DeleteBidHandler handles DELETE /:id/bid/:pk/
func (h *MarketplaceHandler) DeleteBidHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "DeleteBidHandler", "id")
	if !ok {
		return
	}
	id, ok := helpers.ParseID(c, "DeleteBidHandler", "pk")
	if !ok {
		return
	}

	p := helpers.Principal(c)
	if err := h.service.DeleteBid(c.Request.Context(), p, auctionID, id); err != nil {
		helpers.HandleServiceError(c, "DeleteBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"bid_id":     id,
			"user_id":    userID(p),
		})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteBidHandler", "bid deleted successfully", map[string]any{"auction_id": auctionID, "bid_id": id})
}
