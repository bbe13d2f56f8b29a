package auth

import (
	"context"
)

// User mirrors the backend user record.
type User struct {
	ID       int32  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role"`
}

// AuthResponse is what the backend returns on register and login. The token
// is a bearer JWT signed by the backend, the gateway only verifies it.
type AuthResponse struct {
	UserID   int32  `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// params for service method
type RegisterParams struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type LoginParams struct {
	Email    string
	Password string
}

type UpdateProfileParams struct {
	FullName string
	Phone    string
	Address  string
}

type IService interface {
	Register(params RegisterParams) (res *AuthResponse, code int, err error)
	Login(params LoginParams) (res *AuthResponse, code int, err error)
	GetProfile(token string) (res *User, code int, err error)
	UpdateProfile(token string, params UpdateProfileParams) (res *User, code int, err error)
}

type IClient interface {
	Register(ctx context.Context, arg RegisterParams) (*AuthResponse, error)
	Login(ctx context.Context, arg LoginParams) (*AuthResponse, error)
	GetProfile(ctx context.Context, token string) (*User, error)
	UpdateProfile(ctx context.Context, token string, arg UpdateProfileParams) (*User, error)
}
