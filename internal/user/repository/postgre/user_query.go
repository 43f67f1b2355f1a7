package postgre

import (
	repo "api-scaffold/internal/user/repository"
	genericRepo "api-scaffold/pkg/repository"
)

func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) genericRepo.Where {
	var wheres []genericRepo.Where
	if opt.ID != 0 {
		wheres = append(wheres, genericRepo.Eq("id", opt.ID))
	}
	if opt.Email != "" {
		wheres = append(wheres, genericRepo.Eq("email", opt.Email))
	}
	if opt.ExcludeID != 0 {
		wheres = append(wheres, genericRepo.NotEq("id", opt.ExcludeID))
	}
	return genericRepo.And(wheres...)
}

func (r *implRepository) buildListQuery(opt repo.ListUsersOptions) genericRepo.QueryOptions {
	filters := map[string]any{}
	if opt.Role != "" {
		filters["role"] = opt.Role
	}
	return genericRepo.QueryOptions{
		Pagination: opt.Pagination,
		SortOrder:  genericRepo.SortOrder(opt.SortOrder),
		Filters:    filters,
	}
}

func (r *implRepository) buildUpdateValues(opt repo.UpdateUserOptions) genericRepo.Values {
	values := genericRepo.Values{}
	if opt.Email != nil {
		values["email"] = *opt.Email
	}
	if opt.Name != nil {
		values["name"] = *opt.Name
	}
	if opt.PasswordHash != nil {
		values["password_hash"] = *opt.PasswordHash
	}
	if opt.Role != nil {
		values["role"] = *opt.Role
	}
	return values
}
