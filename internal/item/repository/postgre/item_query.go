package postgre

import (
	repo "api-scaffold/internal/item/repository"
	genericRepo "api-scaffold/pkg/repository"
)

var notDeleted = genericRepo.IsNull("deleted_at")

// buildGetOneQuery turns the non-empty fields of opt into AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) genericRepo.Where {
	wheres := []genericRepo.Where{notDeleted}
	if opt.ID != 0 {
		wheres = append(wheres, genericRepo.Eq("id", opt.ID))
	}
	if opt.Name != "" {
		wheres = append(wheres, genericRepo.Eq("name", opt.Name))
	}
	if opt.ExcludeID != 0 {
		wheres = append(wheres, genericRepo.NotEq("id", opt.ExcludeID))
	}
	return genericRepo.And(wheres...)
}

func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) genericRepo.QueryOptions {
	filters := map[string]any{}
	if opt.Status != "" {
		filters["status"] = opt.Status
	}
	if opt.OwnerID != nil {
		filters["owner_id"] = *opt.OwnerID
	}
	return genericRepo.QueryOptions{
		Pagination: opt.Pagination,
		SortOrder:  genericRepo.SortOrder(opt.SortOrder),
		Where:      notDeleted,
		Filters:    filters,
	}
}

func (r *implRepository) buildUpdateValues(opt repo.UpdateItemOptions) genericRepo.Values {
	values := genericRepo.Values{}
	if opt.Name != nil {
		values["name"] = *opt.Name
	}
	if opt.Description != nil {
		values["description"] = *opt.Description
	}
	if opt.Status != nil {
		values["status"] = *opt.Status
	}
	return values
}
