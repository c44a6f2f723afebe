package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/webshop/internal/domain/result"
	"github.com/polkiloo/webshop/internal/server/http/dto"
)

// failurePayload maps result errors onto the uniform error body.
func failurePayload(errs []result.Error) dto.ErrorResponse {
	items := make([]dto.ErrorItem, 0, len(errs))
	for _, e := range errs {
		item := dto.ErrorItem{Message: e.Message}
		if e.Reason != nil {
			item.Reason = &dto.ErrorReason{Name: e.Reason.Name, Description: e.Reason.Description}
		}
		items = append(items, item)
	}
	return dto.ErrorResponse{Errors: items}
}

// present renders a value-producing operation: 500 on infrastructure
// error, 400 with the failure payload on business failure, 200 with the
// rendered value otherwise.
func present[T any](c *gin.Context, res result.Result[T], err error, render func(T) any) {
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if res.IsFailure() {
		c.JSON(http.StatusBadRequest, failurePayload(res.Errors()))
		return
	}
	c.JSON(http.StatusOK, render(res.Value()))
}

// presentVoid renders an operation without a value: 204 on success.
func presentVoid(c *gin.Context, res result.Result[result.Void], err error) {
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if res.IsFailure() {
		c.JSON(http.StatusBadRequest, failurePayload(res.Errors()))
		return
	}
	c.Status(http.StatusNoContent)
}

// idParam parses the :id path segment, aborting with 400 on garbage.
func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
