package http

import (
	"api-scaffold/internal/item"
	"api-scaffold/internal/model"
	"api-scaffold/pkg/dto"
	"api-scaffold/pkg/pagination"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Status      string `json:"status"      binding:"omitempty,oneof=active inactive"`
}

func (r createReq) toInput(ownerID *int64) item.CreateInput {
	return item.CreateInput{
		OwnerID:     ownerID,
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
	}
}

type createBulkReq struct {
	Items []createReq `json:"items" binding:"required,min=1,max=100,dive"`
}

func (r createBulkReq) toInput(ownerID *int64) []item.CreateInput {
	inputs := make([]item.CreateInput, 0, len(r.Items))
	for _, it := range r.Items {
		inputs = append(inputs, it.toInput(ownerID))
	}
	return inputs
}

type listReq struct {
	Page      string `form:"page"`
	Limit     string `form:"limit"`
	Status    string `form:"status"     binding:"omitempty,oneof=active inactive"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Mine      bool   `form:"mine"`
}

func (r listReq) toInput(p pagination.Options, ownerID *int64) item.ListInput {
	in := item.ListInput{
		Status:     r.Status,
		Pagination: p,
		SortOrder:  r.SortOrder,
	}
	if r.Mine {
		in.OwnerID = ownerID
	}
	return in
}

type updateReq struct {
	ID          int64   `json:"-"`
	Name        *string `json:"name"        binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      *string `json:"status"      binding:"omitempty,oneof=active inactive"`
}

func (r updateReq) toInput() item.UpdateInput {
	return item.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
	}
}

type updateStatusReq struct {
	IDs    []int64 `json:"ids"    binding:"required,min=1,max=100,dive,gt=0"`
	Status string  `json:"status" binding:"required,oneof=active inactive"`
}

func (r updateStatusReq) toInput() item.UpdateStatusBulkInput {
	return item.UpdateStatusBulkInput{IDs: r.IDs, Status: r.Status}
}

// --- Response DTOs ---

var itemShape = dto.Options{
	Exclude:        []string{"deleted_at"},
	SerializeDates: true,
}

func shapeItem(it model.Item) dto.Record {
	return dto.ToDTO(it, itemShape)
}

type itemResp struct {
	Item dto.Record `json:"item"`
}

type itemsResp struct {
	Items []dto.Record `json:"items"`
}

type listResp struct {
	Items      []dto.Record        `json:"items"`
	Pagination pagination.Metadata `json:"pagination"`
}

func (h *handler) newItemResp(it model.Item) itemResp {
	return itemResp{Item: shapeItem(it)}
}

func (h *handler) newItemsResp(items []model.Item) itemsResp {
	return itemsResp{Items: dto.ToDTOs(items, itemShape)}
}

func (h *handler) newListResp(out item.ListOutput) listResp {
	return listResp{
		Items:      dto.ToDTOs(out.Items, itemShape),
		Pagination: out.Pagination,
	}
}
