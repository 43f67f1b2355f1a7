package http

import (
	"api-scaffold/internal/middleware"
	"api-scaffold/internal/model"
	"api-scaffold/pkg/response"

	"github.com/gin-gonic/gin"
)

// Login godoc
// @Summary     Log in
// @Description Exchanges email and password for a Bearer access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} response.Resp{data=loginResp}
// @Failure     400  {object} errors.Response "Bad Request"
// @Failure     401  {object} errors.Response "Invalid email or password"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Create godoc
// @Summary     Register a user
// @Description Creates an account. Only admins may create admin accounts.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User data"
// @Success     201  {object} response.Resp{data=userResp}
// @Failure     400  {object} errors.Response "Bad Request"
// @Failure     403  {object} errors.Response "Forbidden"
// @Failure     409  {object} errors.Response "Conflict - email already registered"
// @Router      /api/v1/auth/register [POST]
// @Router      /api/v1/users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if req.Role == model.RoleAdmin {
		if p, ok := middleware.GetPayload(c); !ok || p.Role != model.RoleAdmin {
			response.Error(c, errRoleChange())
			return
		}
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, h.newUserResp(output.User))
}

// List godoc
// @Summary     List users
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Param       page       query int    false "Page number (default: 1)"
// @Param       limit      query int    false "Page size (default: 10, max: 100)"
// @Param       role       query string false "Filter by role (user/admin)"
// @Param       sort_order query string false "asc or desc (default: desc)"
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     403 {object} errors.Response "Forbidden"
// @Router      /api/v1/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, opts, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(opts))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Me godoc
// @Summary     Current user
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp{data=userResp}
// @Failure     401 {object} errors.Response "Unauthorized"
// @Router      /api/v1/users/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	p, ok := middleware.GetPayload(c)
	if !ok {
		response.Error(c, errAuthRequired())
		return
	}

	output, err := h.uc.Detail(ctx, p.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newUserResp(output.User))
}

// Detail godoc
// @Summary     Get user detail
// @Description Users may read their own account; admins may read any.
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} response.Resp{data=userResp}
// @Failure     403 {object} errors.Response "Forbidden"
// @Failure     404 {object} errors.Response "Not Found"
// @Router      /api/v1/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSelfOrAdmin(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newUserResp(output.User))
}

// Update godoc
// @Summary     Update a user
// @Description Partial update. Email uniqueness is checked in the same transaction as the write.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "User ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp{data=userResp}
// @Failure     400 {object} errors.Response "Bad Request"
// @Failure     403 {object} errors.Response "Forbidden"
// @Failure     404 {object} errors.Response "Not Found"
// @Failure     409 {object} errors.Response "Conflict - email already registered"
// @Router      /api/v1/users/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newUserResp(output.User))
}

// Delete godoc
// @Summary     Delete a user
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} errors.Response "Forbidden"
// @Failure     404 {object} errors.Response "Not Found"
// @Router      /api/v1/users/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := response.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "user deleted")
}
