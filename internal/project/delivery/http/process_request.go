package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"project-tracker/internal/middleware"
	"project-tracker/internal/model"
	pkgErrors "project-tracker/pkg/errors"
)

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

func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewValidationError(err)
	}
	return sc, req, nil
}

func (h *handler) processDetailReq(c *gin.Context) (model.Scope, int64, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, 0, err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
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

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}
