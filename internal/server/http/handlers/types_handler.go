package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/webshop/internal/domain/model"
	"github.com/polkiloo/webshop/internal/server/http/dto"
)

// ClothesTypeHandler manages catalog type endpoints.
type ClothesTypeHandler struct {
	facade ClothesTypeFacade
}

// NewClothesTypeHandler constructs ClothesTypeHandler.
func NewClothesTypeHandler(facade ClothesTypeFacade) *ClothesTypeHandler {
	return &ClothesTypeHandler{facade: facade}
}

func clothesTypeResponse(ct model.ClothesType) dto.ClothesTypeResponse {
	return dto.ClothesTypeResponse{ID: ct.ID, Type: ct.Type}
}

// List handles GET /api/clothes-types.
func (h *ClothesTypeHandler) List(c *gin.Context) {
	res, err := h.facade.ClothesTypes(c.Request.Context())
	present(c, res, err, func(types []model.ClothesType) any {
		resp := make([]dto.ClothesTypeResponse, 0, len(types))
		for _, ct := range types {
			resp = append(resp, clothesTypeResponse(ct))
		}
		return resp
	})
}

// Get handles GET /api/clothes-types/:id.
func (h *ClothesTypeHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.facade.ClothesType(c.Request.Context(), id)
	present(c, res, err, func(ct model.ClothesType) any { return clothesTypeResponse(ct) })
}

// Create handles POST /api/clothes-types.
func (h *ClothesTypeHandler) Create(c *gin.Context) {
	var req dto.ClothesTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	res, err := h.facade.CreateClothesType(c.Request.Context(), req.Type)
	present(c, res, err, func(ct model.ClothesType) any { return clothesTypeResponse(ct) })
}

// Update handles PUT /api/clothes-types/:id.
func (h *ClothesTypeHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ClothesTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	res, err := h.facade.UpdateClothesType(c.Request.Context(), id, req.Type)
	presentVoid(c, res, err)
}

// Delete handles DELETE /api/clothes-types/:id.
func (h *ClothesTypeHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.facade.DeleteClothesType(c.Request.Context(), id)
	presentVoid(c, res, err)
}
