package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/webshop/internal/domain/model"
	"github.com/polkiloo/webshop/internal/server/http/dto"
)

// ClothesItemHandler manages catalog item endpoints.
type ClothesItemHandler struct {
	facade ClothesItemFacade
}

// NewClothesItemHandler constructs ClothesItemHandler.
func NewClothesItemHandler(facade ClothesItemFacade) *ClothesItemHandler {
	return &ClothesItemHandler{facade: facade}
}

func clothesItemResponse(item model.ClothesItem) dto.ClothesItemResponse {
	return dto.ClothesItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Price:         item.Price,
		ClothesTypeID: item.ClothesTypeID,
	}
}

// List handles GET /api/clothes-items.
func (h *ClothesItemHandler) List(c *gin.Context) {
	res, err := h.facade.ClothesItems(c.Request.Context())
	present(c, res, err, func(items []model.ClothesItem) any {
		resp := make([]dto.ClothesItemResponse, 0, len(items))
		for _, item := range items {
			resp = append(resp, clothesItemResponse(item))
		}
		return resp
	})
}

// Get handles GET /api/clothes-items/:id.
func (h *ClothesItemHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.facade.ClothesItem(c.Request.Context(), id)
	present(c, res, err, func(item model.ClothesItem) any { return clothesItemResponse(item) })
}

// Create handles POST /api/clothes-items.
func (h *ClothesItemHandler) Create(c *gin.Context) {
	var req dto.ClothesItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	res, err := h.facade.CreateClothesItem(c.Request.Context(), req.Name, req.Price, req.ClothesTypeID)
	present(c, res, err, func(item model.ClothesItem) any { return clothesItemResponse(item) })
}

// Update handles PUT /api/clothes-items/:id.
func (h *ClothesItemHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ClothesItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	res, err := h.facade.UpdateClothesItem(c.Request.Context(), id, req.Name, req.Price, req.ClothesTypeID)
	presentVoid(c, res, err)
}

// Delete handles DELETE /api/clothes-items/:id.
func (h *ClothesItemHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.facade.DeleteClothesItem(c.Request.Context(), id)
	presentVoid(c, res, err)
}
