package http

import (
	"github.com/gin-gonic/gin"

	"project-tracker/internal/task"
	"project-tracker/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Adds a task to a project visible to the caller. Status defaults to "Devam Ediyor".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task data"
// @Success     201  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/tasks [POST]
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

	response.Created(c, newTaskResp(out))
}

// List godoc
// @Summary     List tasks
// @Description Tasks of projects the caller owns or holds a task in (all tasks for staff).
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       project  query int    false "Project ID"
// @Param       assignee query int    false "Assignee user ID"
// @Param       status   query string false "Status"
// @Success     200 {array}  taskResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	sc, err := h.processQueryReq(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	outs, err := h.uc.List(ctx, sc, task.ListInput{ProjectID: req.Project, AssigneeID: req.Assignee, Status: req.Status})
	if err != nil {
		h.logError(ctx, "uc.List", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskListResp(outs))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [GET]
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

	response.OK(c, newTaskResp(out))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update by staff, the project owner or the assignee. An empty date string clears the date; assignee 0 unassigns.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [PUT]
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

	response.OK(c, newTaskResp(out))
}

// Delete godoc
// @Summary     Delete a task (disabled)
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Failure     405 {object} response.Resp "Method Not Allowed"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	response.MethodNotAllowed(c, msgDeleteDisabled)
}

// SyncCalendar godoc
// @Summary     Mirror a task to Google Calendar
// @Description Creates or updates an all-day event spanning the task's start..end (or due) dates.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/tasks/{id}/calendar-sync [POST]
func (h *handler) SyncCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SyncCalendar(ctx, sc, id)
	if err != nil {
		h.logError(ctx, "uc.SyncCalendar", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSyncResp(out))
}

// Gantt godoc
// @Summary     Gantt chart rows
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       project_id query int false "Project ID"
// @Success     200 {array} ganttResp
// @Router      /api/tasks/gantt [GET]
func (h *handler) Gantt(c *gin.Context) {
	ctx := c.Request.Context()

	var req ganttReq
	sc, err := h.processQueryReq(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	outs, err := h.uc.Gantt(ctx, sc, req.ProjectID)
	if err != nil {
		h.logError(ctx, "uc.Gantt", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newGanttResp(outs))
}

// Calendar godoc
// @Summary     Calendar feed
// @Description Tasks overlapping start..end. Bounds accept YYYY-MM-DD or expressions such as "today" and "in 2 weeks".
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       start query string false "Range start"
// @Param       end   query string false "Range end"
// @Success     200 {array}  calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/tasks/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	var req rangeReq
	sc, err := h.processQueryReq(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	outs, err := h.uc.Calendar(ctx, sc, task.RangeInput(req))
	if err != nil {
		h.logError(ctx, "uc.Calendar", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCalendarResp(outs))
}

// Completed godoc
// @Summary     Completed tasks
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} taskResp
// @Router      /api/tasks/reports/completed [GET]
func (h *handler) Completed(c *gin.Context) {
	h.report(c, "uc.Completed", h.uc.Completed)
}

// Active godoc
// @Summary     Tasks that are not completed
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} taskResp
// @Router      /api/tasks/reports/active [GET]
func (h *handler) Active(c *gin.Context) {
	h.report(c, "uc.Active", h.uc.Active)
}

// ByUser godoc
// @Summary     Tasks assigned to a user
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Param       user_id path int true "User ID"
// @Success     200 {array} taskResp
// @Router      /api/tasks/reports/by-user/{user_id} [GET]
func (h *handler) ByUser(c *gin.Context) {
	ctx := c.Request.Context()

	sc, userID, err := h.processByUserReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	outs, err := h.uc.ByUser(ctx, sc, userID)
	if err != nil {
		h.logError(ctx, "uc.ByUser", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskListResp(outs))
}

// ByDate godoc
// @Summary     Tasks within a date range
// @Description Tasks starting on or after start and ending on or before end.
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Param       start query string false "Range start"
// @Param       end   query string false "Range end"
// @Success     200 {array}  taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/tasks/reports/by-date [GET]
func (h *handler) ByDate(c *gin.Context) {
	ctx := c.Request.Context()

	var req rangeReq
	sc, err := h.processQueryReq(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	outs, err := h.uc.ByDate(ctx, sc, task.RangeInput(req))
	if err != nil {
		h.logError(ctx, "uc.ByDate", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskListResp(outs))
}

// Summary godoc
// @Summary     Report panel summary
// @Description Status counts and per-user completion rates.
// @Tags        Reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} summaryResp
// @Router      /api/tasks/reports/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Summary(ctx, sc)
	if err != nil {
		h.logError(ctx, "uc.Summary", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(out))
}
