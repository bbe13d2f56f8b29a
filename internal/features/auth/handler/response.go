package handler

import (
	auth "github.com/vhnguyenx/storefront-gateway/internal/features/auth"
)

type authResp struct {
	UserID   int32  `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type profileResp struct {
	ID       int32  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role"`
}

func toAuthResp(arg *auth.AuthResponse) authResp {
	return authResp{
		UserID:   arg.UserID,
		Email:    arg.Email,
		FullName: arg.FullName,
		Role:     arg.Role,
		Token:    arg.Token,
	}
}

func toProfileResp(arg *auth.User) profileResp {
	return profileResp{
		ID:       arg.ID,
		Email:    arg.Email,
		FullName: arg.FullName,
		Phone:    arg.Phone,
		Address:  arg.Address,
		Role:     arg.Role,
	}
}
