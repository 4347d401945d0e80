package http

import (
	"github.com/gin-gonic/gin"

	"project-tracker/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates a password account. The role defaults to "üye".
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201  {object} userResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - email already registered"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/users/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.logError(ctx, "uc.Register", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newUserResp(u))
}

// Login godoc
// @Summary     Sign in with email and password
// @Description Returns an access/refresh token pair and the signed-in user.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} tokenResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Invalid credentials"
// @Failure     403  {object} response.Resp "Inactive account"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/users/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.logError(ctx, "uc.Login", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTokenResp(out))
}

// Refresh godoc
// @Summary     Refresh the access token
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body refreshReq true "Refresh token"
// @Success     200  {object} refreshResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Invalid refresh token"
// @Router      /api/users/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefreshReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Refresh(ctx, req.Refresh)
	if err != nil {
		h.logError(ctx, "uc.Refresh", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, refreshResp{Access: out.Access})
}

// GoogleLogin godoc
// @Summary     Sign in with a Google ID token
// @Description Verifies the token, creates the account on first use and returns a token pair.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body googleLoginReq true "Google credential (credential or id_token)"
// @Success     200  {object} tokenResp
// @Failure     400  {object} response.Resp "Missing or invalid credential"
// @Failure     503  {object} response.Resp "Google sign-in not configured"
// @Router      /api/users/google-login [POST]
func (h *handler) GoogleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	credential, err := h.processGoogleLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.GoogleLogin(ctx, credential)
	if err != nil {
		h.logError(ctx, "uc.GoogleLogin", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newGoogleTokenResp(out))
}

// GoogleConfig godoc
// @Summary     Google sign-in configuration
// @Tags        Users
// @Produce     json
// @Success     200 {object} googleConfigResp
// @Router      /api/users/google-config [GET]
func (h *handler) GoogleConfig(c *gin.Context) {
	out := h.uc.GoogleConfig(c.Request.Context())
	response.OK(c, googleConfigResp{ClientID: out.ClientID, Enabled: out.Enabled})
}

// Me godoc
// @Summary     Current user
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/users/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.logError(ctx, "uc.Me", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// FindByEmail godoc
// @Summary     Look up a user by email
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Param       email query string true "Email address"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/users/find-by-email [GET]
func (h *handler) FindByEmail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, email, err := h.processFindByEmailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.FindByEmail(ctx, sc, email)
	if err != nil {
		h.logError(ctx, "uc.FindByEmail", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// List godoc
// @Summary     List users
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	users, err := h.uc.List(ctx, sc)
	if err != nil {
		h.logError(ctx, "uc.List", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserListResp(users))
}

// Detail godoc
// @Summary     Get a user
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} userResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.logError(ctx, "uc.Detail", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// Update godoc
// @Summary     Update a user
// @Description Partial update. Only staff or the user themself may update; only staff may change the role.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "User ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - email already registered"
// @Router      /api/users/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.logError(ctx, "uc.Update", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// Delete godoc
// @Summary     Delete a user (disabled)
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Failure     405 {object} response.Resp "Method Not Allowed"
// @Router      /api/users/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	response.MethodNotAllowed(c, msgDeleteDisabled)
}
