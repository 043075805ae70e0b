package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"task-tracker/internal/task"
)

const submitFailedMessage = "Could not save the task. Please try again."

// Index renders the add-task form and every stored task in file order.
func (h *handler) Index(c *gin.Context) {
	today := h.today()
	page, ok := h.loadPage(c, today)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, page)
}

// Submit handles the form post. A valid task redirects back to the page so a
// reload does not resubmit; a rejected one re-renders with the error shown in
// a dialog and the typed values kept.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFormReq(c)
	if err != nil {
		h.renderFormError(c, http.StatusBadRequest, req, err.Error())
		return
	}

	if _, err := h.uc.Create(ctx, req.toInput()); err != nil {
		if task.IsValidation(err) {
			h.renderFormError(c, http.StatusUnprocessableEntity, req, err.Error())
			return
		}
		h.l.Errorf(ctx, "task.delivery.http.Submit: %v", err)
		h.renderFormError(c, http.StatusInternalServerError, req, submitFailedMessage)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handler) renderFormError(c *gin.Context, code int, req formReq, msg string) {
	page, ok := h.loadPage(c, h.today())
	if !ok {
		return
	}
	page.Form = req
	page.Error = msg
	h.render(c, code, page)
}

// loadPage lists the tasks for the page. On a storage failure it writes a 500
// and reports false.
func (h *handler) loadPage(c *gin.Context, today time.Time) (pageView, bool) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, task.ListInput{Today: today})
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.loadPage: %v", err)
		c.String(http.StatusInternalServerError, "Error: %v", err)
		return pageView{}, false
	}
	return h.newPageView(output, today), true
}

func (h *handler) render(c *gin.Context, code int, page pageView) {
	c.Render(code, render.HTML{
		Template: pageTmpl,
		Name:     "index.html",
		Data:     page,
	})
}
