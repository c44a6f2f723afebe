package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/webshop/internal/domain/model"
	"github.com/polkiloo/webshop/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

func orderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		ClothesItemsID: o.ItemIDs(),
		TotalPrice:     o.TotalPrice,
	}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	res, err := h.facade.Orders(c.Request.Context())
	present(c, res, err, func(orders []model.Order) any {
		resp := make([]dto.OrderResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, orderResponse(o))
		}
		return resp
	})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.facade.Order(c.Request.Context(), id)
	present(c, res, err, func(o model.Order) any { return orderResponse(o) })
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	res, err := h.facade.CreateOrder(c.Request.Context(), req.CustomerID, req.ClothesItemsID)
	present(c, res, err, func(o model.Order) any { return orderResponse(o) })
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	res, err := h.facade.UpdateOrder(c.Request.Context(), id, req.CustomerID, req.ClothesItemsID)
	presentVoid(c, res, err)
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.facade.DeleteOrder(c.Request.Context(), id)
	presentVoid(c, res, err)
}
