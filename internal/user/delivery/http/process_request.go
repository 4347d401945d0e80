package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"project-tracker/internal/middleware"
	"project-tracker/internal/model"
	pkgErrors "project-tracker/pkg/errors"
)

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}

func (h *handler) processRefreshReq(c *gin.Context) (refreshReq, error) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}

func (h *handler) processGoogleLoginReq(c *gin.Context) (string, error) {
	var req googleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", errCredentialEmpty
	}
	token := strings.TrimSpace(req.token())
	if token == "" {
		return "", errCredentialEmpty
	}
	return token, nil
}

func (h *handler) processFindByEmailReq(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, "", err
	}
	var req findByEmailReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, "", pkgErrors.NewValidationError(err)
	}
	if strings.TrimSpace(req.Email) == "" {
		return sc, "", errEmailRequired
	}
	return sc, req.Email, nil
}

func (h *handler) processDetailReq(c *gin.Context) (model.Scope, int64, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, 0, err
	}
	id, err := parseID(c.Param("id"))
	return sc, id, err
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

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errIDInvalid
	}
	return id, nil
}
