package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"project-tracker/internal/middleware"
	"project-tracker/internal/model"
	pkgErrors "project-tracker/pkg/errors"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewValidationError(err)
	}
	return sc, req, nil
}

func (h *handler) processDetailReq(c *gin.Context) (model.Scope, int64, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, 0, err
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		return sc, 0, errIDInvalid
	}
	return sc, id, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, id, err := h.processDetailReq(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewValidationError(err)
	}
	req.ID = id
	return sc, req, nil
}

// processQueryReq binds query parameters into req.
func (h *handler) processQueryReq(c *gin.Context, req any) (model.Scope, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, err
	}
	if err := c.ShouldBindQuery(req); err != nil {
		return sc, pkgErrors.NewValidationError(err)
	}
	return sc, nil
}

func (h *handler) processByUserReq(c *gin.Context) (model.Scope, int64, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, 0, err
	}
	id, err := parseID(c.Param("user_id"))
	if err != nil {
		return sc, 0, errUserIDInvalid
	}
	return sc, id, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errIDInvalid
	}
	return id, nil
}
