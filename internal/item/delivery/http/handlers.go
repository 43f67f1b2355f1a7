package http

import (
	"api-scaffold/pkg/response"

	"github.com/gin-gonic/gin"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates a new item owned by the caller. Names are unique among live items.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Item data"
// @Success     201  {object} response.Resp{data=itemResp}
// @Failure     400  {object} errors.Response "Bad Request"
// @Failure     401  {object} errors.Response "Unauthorized"
// @Failure     409  {object} errors.Response "Conflict - name already exists"
// @Failure     500  {object} errors.Response "Internal Server Error"
// @Router      /api/v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(callerID(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, h.newItemResp(output.Item))
}

// CreateBulk godoc
// @Summary     Create many items
// @Description Creates all items in one transaction, or none of them.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createBulkReq true "Items"
// @Success     201  {object} response.Resp{data=itemsResp}
// @Failure     400  {object} errors.Response "Bad Request"
// @Failure     409  {object} errors.Response "Conflict - name already exists"
// @Failure     500  {object} errors.Response "Internal Server Error"
// @Router      /api/v1/items/bulk [POST]
func (h *handler) CreateBulk(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateBulkReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateBulk(ctx, req.toInput(callerID(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, h.newItemsResp(output.Items))
}

// List godoc
// @Summary     List items
// @Description Returns a page of live items with optional status filter.
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       page       query int    false "Page number (default: 1)"
// @Param       limit      query int    false "Page size (default: 10, max: 100)"
// @Param       status     query string false "Filter by status (active/inactive)"
// @Param       sort_order query string false "asc or desc (default: desc)"
// @Param       mine       query bool   false "Only items owned by the caller"
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     400 {object} errors.Response "Bad Request"
// @Failure     500 {object} errors.Response "Internal Server Error"
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, opts, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(opts, callerID(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single live item by its ID.
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Success     200 {object} response.Resp{data=itemResp}
// @Failure     404 {object} errors.Response "Not Found"
// @Failure     500 {object} errors.Response "Internal Server Error"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := response.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newItemResp(output.Item))
}

// Update godoc
// @Summary     Update an item
// @Description Updates an existing item. All fields are optional (partial update).
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp{data=itemResp}
// @Failure     400 {object} errors.Response "Bad Request"
// @Failure     403 {object} errors.Response "Forbidden - not the owner"
// @Failure     404 {object} errors.Response "Not Found"
// @Failure     409 {object} errors.Response "Conflict - name already exists"
// @Failure     500 {object} errors.Response "Internal Server Error"
// @Router      /api/v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, caller(c), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Soft deletes an item by ID.
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} errors.Response "Forbidden - not the owner"
// @Failure     404 {object} errors.Response "Not Found"
// @Failure     500 {object} errors.Response "Internal Server Error"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := response.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, caller(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "item deleted")
}

// UpdateStatusBulk godoc
// @Summary     Change the status of many items
// @Description Sets one status on every listed item in a single transaction. A missing id rolls back all changes.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateStatusReq true "Item ids and status"
// @Success     200 {object} response.Resp{data=itemsResp}
// @Failure     400 {object} errors.Response "Bad Request"
// @Failure     403 {object} errors.Response "Forbidden - not the owner"
// @Failure     404 {object} errors.Response "Not Found"
// @Failure     500 {object} errors.Response "Internal Server Error"
// @Router      /api/v1/items/status [PATCH]
func (h *handler) UpdateStatusBulk(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateStatusBulk(ctx, caller(c), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newItemsResp(output.Items))
}
