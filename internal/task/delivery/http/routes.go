package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/middleware"
)

// RegisterRoutes maps the HTML form and the JSON API onto r.
// Writes go through the rate limiter; reads do not.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.GET("/", h.Index)
	r.POST("/tasks", mw.RateLimit(), h.Submit)

	api := r.Group("/api/v1/tasks")
	{
		api.POST("", mw.RateLimit(), h.Create)
		api.GET("", h.List)
		api.GET("/export", h.Export)
	}
}
