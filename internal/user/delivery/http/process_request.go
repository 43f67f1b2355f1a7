package http

import (
	"api-scaffold/internal/middleware"
	"api-scaffold/internal/model"
	"api-scaffold/pkg/pagination"
	"api-scaffold/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.BindingError(err)
	}
	return req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.BindingError(err)
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, pagination.Options, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pagination.Options{}, response.BindingError(err)
	}
	opts, err := pagination.FromQuery(req.Page, req.Limit)
	if err != nil {
		return req, pagination.Options{}, err
	}
	return req, opts, nil
}

// processSelfOrAdmin reads the id path parameter and lets through only the
// owner of that account or an admin.
func (h *handler) processSelfOrAdmin(c *gin.Context) (int64, error) {
	id, err := response.ParseID(c.Param("id"))
	if err != nil {
		return 0, err
	}
	p, ok := middleware.GetPayload(c)
	if !ok {
		return 0, errAuthRequired()
	}
	if p.UserID != id && p.Role != model.RoleAdmin {
		return 0, errNotOwner(id)
	}
	return id, nil
}

// processUpdateReq binds the update body. Only admins may change roles.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processSelfOrAdmin(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.BindingError(err)
	}
	if req.Role != nil {
		if p, _ := middleware.GetPayload(c); p.Role != model.RoleAdmin {
			return req, errRoleChange()
		}
	}
	req.ID = id
	return req, nil
}
