package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/task"
	"task-tracker/pkg/response"
)

// mapError writes the JSON error for a use-case failure.
// Input problems are 400 with the offending field; everything else is 500.
func (h *handler) mapError(c *gin.Context, err error) {
	var ve *task.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Error(c, ve, map[string]interface{}{"field": ve.Field})
	case errors.Is(err, task.ErrUnknownFormat):
		response.Error(c, err, map[string]interface{}{"field": "format"})
	default:
		h.l.Errorf(c.Request.Context(), "task.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
