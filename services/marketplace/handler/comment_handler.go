package handler

import (
	"net/http"

	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListCommentsHandler handles GET /:id/comments/
func (h *MarketplaceHandler) ListCommentsHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "ListCommentsHandler", "id")
	if !ok {
		return
	}

	comments, err := h.service.ListComments(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "ListCommentsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCommentResponses(comments), "comments retrieved successfully")
	helpers.LogSuccess("ListCommentsHandler", "comments retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(comments),
	})
}

// CreateCommentHandler handles POST /:id/comments/
func (h *MarketplaceHandler) CreateCommentHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "CreateCommentHandler", "id")
	if !ok {
		return
	}
	var req helpers.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCommentHandler", err)
		return
	}

	p := helpers.Principal(c)
	comment, err := h.service.CreateComment(c.Request.Context(), p, auctionID, req.ToInput())
	if err != nil {
		helpers.HandleServiceError(c, "CreateCommentHandler", err, map[string]any{"auction_id": auctionID, "user_id": userID(p)})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewCommentResponse(comment), "comment created successfully")
	helpers.LogSuccess("CreateCommentHandler", "comment created successfully", map[string]any{
		"comment_id": comment.ID,
		"auction_id": comment.AuctionID,
		"user_id":    comment.UserID,
	})
}

// GetCommentHandler handles GET /:id/comments/:pk/
func (h *MarketplaceHandler) GetCommentHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "GetCommentHandler", "id")
	if !ok {
		return
	}
	id, ok := helpers.ParseID(c, "GetCommentHandler", "pk")
	if !ok {
		return
	}

	comment, err := h.service.GetComment(c.Request.Context(), auctionID, id)
	if err != nil {
		helpers.HandleServiceError(c, "GetCommentHandler", err, map[string]any{"auction_id": auctionID, "comment_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCommentResponse(comment), "comment retrieved successfully")
}

// UpdateCommentHandler handles PUT /:id/comments/:pk/
func (h *MarketplaceHandler) UpdateCommentHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "UpdateCommentHandler", "id")
	if !ok {
		return
	}
	id, ok := helpers.ParseID(c, "UpdateCommentHandler", "pk")
	if !ok {
		return
	}
	var req helpers.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCommentHandler", err)
		return
	}

	p := helpers.Principal(c)
	comment, err := h.service.UpdateComment(c.Request.Context(), p, auctionID, id, req.ToInput())
	if err != nil {
		helpers.HandleServiceError(c, "UpdateCommentHandler", err, map[string]any{
			"auction_id": auctionID,
			"comment_id": id,
			"user_id":    userID(p),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCommentResponse(comment), "comment updated successfully")
	helpers.LogSuccess("UpdateCommentHandler", "comment updated successfully", map[string]any{"comment_id": comment.ID})
}

// DeleteCommentHandler handles DELETE /:id/comments/:pk/
func (h *MarketplaceHandler) DeleteCommentHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseID(c, "DeleteCommentHandler", "id")
	if !ok {
		return
	}
	id, ok := helpers.ParseID(c, "DeleteCommentHandler", "pk")
	if !ok {
		return
	}

	p := helpers.Principal(c)
	if err := h.service.DeleteComment(c.Request.Context(), p, auctionID, id); err != nil {
		helpers.HandleServiceError(c, "DeleteCommentHandler", err, map[string]any{
			"auction_id": auctionID,
			"comment_id": id,
			"user_id":    userID(p),
		})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteCommentHandler", "comment deleted successfully", map[string]any{"auction_id": auctionID, "comment_id": id})
}
