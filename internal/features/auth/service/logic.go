package service

import (
	"context"
	"errors"
	"fmt"

	auth "github.com/vhnguyenx/storefront-gateway/internal/features/auth"
	errorHandler "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

// The backend owns accounts and credentials, this service only forwards
// requests and normalizes the result codes.
type authService struct {
	ctx    context.Context
	client auth.IClient
}

func NewAuthService(ctx context.Context, client auth.IClient) auth.IService {
	return &authService{
		ctx:    ctx,
		client: client,
	}
}

func (s *authService) Register(params auth.RegisterParams) (res *auth.AuthResponse, code int, err error) {
	res, err = s.client.Register(s.ctx, params)
	if err != nil {
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to register, err: %v", err)
	}

	return res, errorHandler.CodeSuccessCreate, nil
}

func (s *authService) Login(params auth.LoginParams) (res *auth.AuthResponse, code int, err error) {
	res, err = s.client.Login(s.ctx, params)
	if err != nil {
		if errors.Is(err, errorHandler.ErrUnauthorized) {
			return nil, errorHandler.CodeFailedUnauthorized, fmt.Errorf("invalid email or password")
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to login, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}

func (s *authService) GetProfile(token string) (res *auth.User, code int, err error) {
	res, err = s.client.GetProfile(s.ctx, token)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			return nil, errorHandler.CodeFailedNotFound, errorHandler.ErrNoData
		}
		if errors.Is(err, errorHandler.ErrUnauthorized) {
			return nil, errorHandler.CodeFailedUnauthorized, errorHandler.ErrUnauthorized
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to get profile, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}

func (s *authService) UpdateProfile(token string, params auth.UpdateProfileParams) (res *auth.User, code int, err error) {
	res, err = s.client.UpdateProfile(s.ctx, token, params)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			return nil, errorHandler.CodeFailedNotFound, errorHandler.ErrNoData
		}
		if errors.Is(err, errorHandler.ErrUnauthorized) {
			return nil, errorHandler.CodeFailedUnauthorized, errorHandler.ErrUnauthorized
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to update profile, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}
