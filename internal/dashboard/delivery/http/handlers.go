package http

import (
	"github.com/gin-gonic/gin"

	"project-tracker/internal/middleware"
	pkgErrors "project-tracker/pkg/errors"
	"project-tracker/pkg/response"
)

// Summary godoc
// @Summary     Dashboard summary
// @Description Counts, the five newest projects and unfinished tasks due within two weeks, all limited to what the caller can see.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} summaryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/dashboard/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	out, err := h.uc.Summary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, newSummaryResp(out))
}
