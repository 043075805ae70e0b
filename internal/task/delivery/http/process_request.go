package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/model"
)

// processCreateReq binds the JSON create body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, time.Time, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, time.Time{}, err
	}
	today, err := h.resolveToday(req.Today)
	return req, today, err
}

// processExportReq binds and validates the export query parameters.
func (h *handler) processExportReq(c *gin.Context) (exportReq, time.Time, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, time.Time{}, err
	}
	today, err := h.resolveToday(req.Today)
	return req, today, err
}

// processFormReq binds the urlencoded form body. Validation happens in the use case.
func (h *handler) processFormReq(c *gin.Context) (formReq, error) {
	var req formReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// resolveToday uses the ?today= override when present, else the injected clock.
func (h *handler) resolveToday(raw string) (time.Time, error) {
	if raw == "" {
		return h.today(), nil
	}
	return model.ParseDeadline(raw)
}
