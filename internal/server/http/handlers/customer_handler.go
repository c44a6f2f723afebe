package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/webshop/internal/domain/model"
	"github.com/polkiloo/webshop/internal/server/http/dto"
)

// CustomerHandler manages customer endpoints.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

func customerResponse(cust model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:          cust.ID,
		Name:        cust.Name,
		TotalSpent:  cust.TotalSpent,
		HasDiscount: cust.HasDiscount,
		OrdersCount: cust.OrdersCount,
	}
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	res, err := h.facade.Customers(c.Request.Context())
	present(c, res, err, func(customers []model.Customer) any {
		resp := make([]dto.CustomerResponse, 0, len(customers))
		for _, cust := range customers {
			resp = append(resp, customerResponse(cust))
		}
		return resp
	})
}

// Get handles GET /api/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.facade.Customer(c.Request.Context(), id)
	present(c, res, err, func(cust model.Customer) any { return customerResponse(cust) })
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	res, err := h.facade.CreateCustomer(c.Request.Context(), req.Name)
	present(c, res, err, func(cust model.Customer) any { return customerResponse(cust) })
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	res, err := h.facade.UpdateCustomer(c.Request.Context(), id, req.Name)
	presentVoid(c, res, err)
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.facade.DeleteCustomer(c.Request.Context(), id)
	presentVoid(c, res, err)
}

// Sync handles POST /api/customers/sync and imports missing customers
// from the external feed.
func (h *CustomerHandler) Sync(c *gin.Context) {
	added, err := h.facade.SyncCustomers(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.SyncResponse{Added: added})
}
