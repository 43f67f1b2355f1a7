package http

import (
	"api-scaffold/internal/middleware"
	"api-scaffold/pkg/pagination"
	"api-scaffold/pkg/response"
	"api-scaffold/pkg/scope"

	"github.com/gin-gonic/gin"
)

// caller returns the authenticated user. Routes sit behind Auth, so the zero
// Payload only shows up in handler tests.
func caller(c *gin.Context) scope.Payload {
	p, _ := middleware.GetPayload(c)
	return p
}

func callerID(c *gin.Context) *int64 {
	p, ok := middleware.GetPayload(c)
	if !ok {
		return nil
	}
	id := p.UserID
	return &id
}

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.BindingError(err)
	}
	return req, nil
}

// processCreateBulkReq binds and validates the bulk create request body.
func (h *handler) processCreateBulkReq(c *gin.Context) (createBulkReq, error) {
	var req createBulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.BindingError(err)
	}
	return req, nil
}

// processListReq binds the list query and turns paging parameters into options.
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

// processUpdateReq binds and validates the update body plus the id path parameter.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := response.ParseID(c.Param("id"))
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.BindingError(err)
	}
	req.ID = id
	return req, nil
}

// processUpdateStatusReq binds and validates the bulk status body.
func (h *handler) processUpdateStatusReq(c *gin.Context) (updateStatusReq, error) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.BindingError(err)
	}
	return req, nil
}
