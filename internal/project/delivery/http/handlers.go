package http

import (
	"github.com/gin-gonic/gin"

	"project-tracker/internal/project"
	"project-tracker/pkg/response"
)

// Create godoc
// @Summary     Create a project
// @Description Creates a project owned by the caller. Progress must be within 0-100 and start must not be after end.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Project data"
// @Success     201  {object} projectResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/projects [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.logError(ctx, "uc.Create", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newProjectResp(out))
}

// List godoc
// @Summary     List projects
// @Description Staff see every project; other users see projects they own or hold a task in. Newest first.
// @Tags        Projects
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Maximum number of projects"
// @Success     200 {array}  projectResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/projects [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	outs, err := h.uc.List(ctx, sc, project.ListInput{Limit: req.Limit})
	if err != nil {
		h.logError(ctx, "uc.List", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProjectListResp(outs))
}

// Detail godoc
// @Summary     Get a project
// @Tags        Projects
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Project ID"
// @Success     200 {object} projectResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.logError(ctx, "uc.Detail", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProjectResp(out))
}

// Update godoc
// @Summary     Update a project
// @Description Partial update by the owner or staff. An empty date string clears the date.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "Project ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} projectResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/projects/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.logError(ctx, "uc.Update", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProjectResp(out))
}

// Delete godoc
// @Summary     Delete a project
// @Description Removes the project and its tasks. Owner or staff only.
// @Tags        Projects
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Project ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/projects/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.logError(ctx, "uc.Delete", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
