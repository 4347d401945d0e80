package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"project-tracker/internal/model"
	"project-tracker/internal/task"
	"project-tracker/pkg/response"
)

type reportFunc func(ctx context.Context, sc model.Scope) ([]task.TaskOutput, error)

// report serves a parameterless task report.
func (h *handler) report(c *gin.Context, op string, fn reportFunc) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	outs, err := fn(ctx, sc)
	if err != nil {
		h.logError(ctx, op, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskListResp(outs))
}
