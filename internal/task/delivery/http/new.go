package http

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/task"
	pkgLog "task-tracker/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	// JSON API
	Create(c *gin.Context)
	List(c *gin.Context)
	Export(c *gin.Context)

	// HTML form
	Index(c *gin.Context)
	Submit(c *gin.Context)
}

type handler struct {
	l     pkgLog.Logger
	uc    task.UseCase
	today func() time.Time
}

// New creates a new HTTP handler for the task domain.
// today supplies the reference date when a request does not pin one.
func New(l pkgLog.Logger, uc task.UseCase, today func() time.Time) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		today: today,
	}
}
