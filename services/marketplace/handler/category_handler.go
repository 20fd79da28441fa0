package handler

import (
	"net/http"

	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListCategoriesHandler handles GET /categories/
func (h *MarketplaceHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListCategoriesHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCategoryResponses(categories), "categories retrieved successfully")
	helpers.LogSuccess("ListCategoriesHandler", "categories retrieved successfully", map[string]any{"count": len(categories)})
}

// CreateCategoryHandler handles POST /categories/
func (h *MarketplaceHandler) CreateCategoryHandler(c *gin.Context) {
	var req helpers.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCategoryHandler", err)
		return
	}

	p := helpers.Principal(c)
	category, err := h.service.CreateCategory(c.Request.Context(), p, req.Name)
	if err != nil {
		helpers.HandleServiceError(c, "CreateCategoryHandler", err, map[string]any{"name": req.Name, "user_id": userID(p)})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewCategoryResponse(category), "category created successfully")
	helpers.LogSuccess("CreateCategoryHandler", "category created successfully", map[string]any{
		"category_id": category.ID,
		"name":        category.Name,
		"user_id":     p.UserID,
	})
}

// GetCategoryHandler handles GET /categories/:id/
func (h *MarketplaceHandler) GetCategoryHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetCategoryHandler", "id")
	if !ok {
		return
	}

	category, err := h.service.GetCategory(c.Request.Context(), helpers.Principal(c), id)
	if err != nil {
		helpers.HandleServiceError(c, "GetCategoryHandler", err, map[string]any{"category_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCategoryResponse(category), "category retrieved successfully")
}

// UpdateCategoryHandler handles PUT /categories/:id/
func (h *MarketplaceHandler) UpdateCategoryHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "UpdateCategoryHandler", "id")
	if !ok {
		return
	}
	var req helpers.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCategoryHandler", err)
		return
	}

	p := helpers.Principal(c)
	category, err := h.service.UpdateCategory(c.Request.Context(), p, id, req.Name)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateCategoryHandler", err, map[string]any{"category_id": id, "user_id": userID(p)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCategoryResponse(category), "category updated successfully")
	helpers.LogSuccess("UpdateCategoryHandler", "category updated successfully", map[string]any{
		"category_id": category.ID,
		"name":        category.Name,
	})
}

// DeleteCategoryHandler handles DELETE /categories/:id/
func (h *MarketplaceHandler) DeleteCategoryHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "DeleteCategoryHandler", "id")
	if !ok {
		return
	}

	p := helpers.Principal(c)
	if err := h.service.DeleteCategory(c.Request.Context(), p, id); err != nil {
		helpers.HandleServiceError(c, "DeleteCategoryHandler", err, map[string]any{"category_id": id, "user_id": userID(p)})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteCategoryHandler", "category deleted successfully", map[string]any{"category_id": id})
}
