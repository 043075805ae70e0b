package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker/pkg/response"
)

// Create godoc
// @Summary     Add a task
// @Description Validates the task and appends it to the task file.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns every stored task with its suggestion. Records that cannot be read are reported under invalid.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       sort  query string false "Order by deadline instead of file order" Enums(deadline)
// @Param       today query string false "Reference date (YYYY-MM-DD), defaults to the server's today"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, today, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(today))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output, today))
}

// Export godoc
// @Summary     Export tasks
// @Description Downloads the task list as csv, json or pdf, ordered by deadline.
// @Tags        Tasks
// @Produce     text/csv
// @Produce     application/json
// @Produce     application/pdf
// @Param       format query string false "Output format (default: csv)" Enums(csv, json, pdf)
// @Param       today  query string false "Reference date (YYYY-MM-DD)"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, today, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, req.toInput(today))
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, output.ContentType, output.Data)
}
