package http

import (
	"api-scaffold/internal/model"
	"api-scaffold/internal/user"
	"api-scaffold/pkg/dto"
	"api-scaffold/pkg/pagination"
)

// --- Request DTOs ---

type createReq struct {
	Email    string `json:"email"    binding:"required,email,max=255"`
	Name     string `json:"name"     binding:"required,min=1,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role"     binding:"omitempty,oneof=user admin"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Role:     r.Role,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

type listReq struct {
	Page      string `form:"page"`
	Limit     string `form:"limit"`
	Role      string `form:"role"       binding:"omitempty,oneof=user admin"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

func (r listReq) toInput(p pagination.Options) user.ListInput {
	return user.ListInput{Role: r.Role, Pagination: p, SortOrder: r.SortOrder}
}

type updateReq struct {
	ID       int64   `json:"-"`
	Email    *string `json:"email"    binding:"omitempty,email,max=255"`
	Name     *string `json:"name"     binding:"omitempty,min=1,max=255"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
	Role     *string `json:"role"     binding:"omitempty,oneof=user admin"`
}

func (r updateReq) toInput() user.UpdateInput {
	return user.UpdateInput{
		ID:       r.ID,
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Role:     r.Role,
	}
}

// --- Response DTOs ---

// The password hash never leaves the service.
var userShape = dto.Options{
	Exclude:        []string{"password"},
	SerializeDates: true,
}

type userResp struct {
	User dto.Record `json:"user"`
}

type listResp struct {
	Users      []dto.Record        `json:"users"`
	Pagination pagination.Metadata `json:"pagination"`
}

type loginResp struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        dto.Record `json:"user"`
}

func (h *handler) newUserResp(u model.User) userResp {
	return userResp{User: dto.ToDTO(u, userShape)}
}

func (h *handler) newListResp(out user.ListOutput) listResp {
	return listResp{
		Users:      dto.ToDTOs(out.Users, userShape),
		Pagination: out.Pagination,
	}
}

func (h *handler) newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		User:        dto.ToDTO(out.User, userShape),
	}
}
