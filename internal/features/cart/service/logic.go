package service

import (
	"context"
	"errors"
	"fmt"

	cart "github.com/vhnguyenx/storefront-gateway/internal/features/cart"
	converter "github.com/vhnguyenx/storefront-gateway/pkg/utils/converter"
	errorHandler "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

type cartService struct {
	ctx    context.Context
	client cart.IClient
}

func NewCartService(ctx context.Context, client cart.IClient) cart.IService {
	return &cartService{
		ctx:    ctx,
		client: client,
	}
}

func (s *cartService) GetCart(token string) (res *cart.Cart, code int, err error) {
	res, err = s.client.GetCart(s.ctx, token)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			// no cart yet is an empty cart, not a failure
			return &cart.Cart{Items: []cart.CartItem{}}, errorHandler.CodeSuccess, nil
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to get cart, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}

// AddToCart sends the mutation, then refetches the authoritative snapshot
// so the response always carries backend-computed totals.
func (s *cartService) AddToCart(token string, params cart.AddToCartParams) (res *cart.Cart, code int, err error) {
	err = s.client.AddToCart(s.ctx, token, params)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			return nil, errorHandler.CodeFailedNotFound, errorHandler.ErrNoData
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to add to cart, err: %v", err)
	}

	res, err = s.client.GetCart(s.ctx, token)
	if err != nil {
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to get cart, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}

func (s *cartService) UpdateCartItem(token string, params cart.UpdateCartItemParams) (res *cart.Cart, code int, err error) {
	err = s.client.UpdateCartItem(s.ctx, token, params)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			return nil, errorHandler.CodeFailedNotFound, errorHandler.ErrNoData
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to update cart item, err: %v", err)
	}

	res, err = s.client.GetCart(s.ctx, token)
	if err != nil {
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to get cart, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}

func (s *cartService) RemoveFromCart(token string, itemIDInput string) (res *cart.Cart, code int, err error) {
	itemID, err := converter.ConvertStrToInt32(itemIDInput)
	if err != nil {
		return nil, errorHandler.CodeFailedUser, fmt.Errorf("invalid cart item id: %v", err)
	}

	err = s.client.RemoveFromCart(s.ctx, token, itemID)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			return nil, errorHandler.CodeFailedNotFound, errorHandler.ErrNoData
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to remove cart item, err: %v", err)
	}

	res, err = s.client.GetCart(s.ctx, token)
	if err != nil {
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to get cart, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}

func (s *cartService) ClearCart(token string) (code int, err error) {
	err = s.client.ClearCart(s.ctx, token)
	if err != nil {
		return errorHandler.CodeFailedUpstream, fmt.Errorf("failed to clear cart, err: %v", err)
	}

	return errorHandler.CodeSuccess, nil
}
