package usecase

import (
	"context"

	"api-scaffold/internal/item"
	repo "api-scaffold/internal/item/repository"
	"api-scaffold/internal/model"
	"api-scaffold/pkg/scope"
)

func validStatus(status string) bool {
	return status == model.ItemStatusActive || status == model.ItemStatusInactive
}

// ensureNameFree fails with Conflict when another live item already uses name.
func (uc *implUseCase) ensureNameFree(ctx context.Context, name string, excludeID int64) error {
	_, found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{Name: name, ExcludeID: excludeID})
	if err != nil {
		return err
	}
	if found {
		return item.ErrDuplicateName(name)
	}
	return nil
}

func isAdmin(sc scope.Payload) bool {
	return sc.Role == model.RoleAdmin
}

// canModify reports whether sc may change it. Admins may change any
// item, everyone else only their own.
func canModify(sc scope.Payload, it model.Item) bool {
	return isAdmin(sc) || it.OwnedBy(sc.UserID)
}
