package service

import (
	"context"
	"errors"
	"fmt"

	orders "github.com/vhnguyenx/storefront-gateway/internal/features/orders"
	converter "github.com/vhnguyenx/storefront-gateway/pkg/utils/converter"
	errorHandler "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

type orderService struct {
	ctx    context.Context
	client orders.IClient
}

func NewOrderService(ctx context.Context, client orders.IClient) orders.IService {
	return &orderService{
		ctx:    ctx,
		client: client,
	}
}

func (s *orderService) CreateOrder(token string, params orders.CreateOrderParams) (res *orders.Order, code int, err error) {
	res, err = s.client.CreateOrder(s.ctx, token, params)
	if err != nil {
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to create order, err: %v", err)
	}

	return res, errorHandler.CodeSuccessCreate, nil
}

func (s *orderService) GetOrder(token string, idInput string) (res *orders.Order, code int, err error) {
	id, err := converter.ConvertStrToInt32(idInput)
	if err != nil {
		return nil, errorHandler.CodeFailedUser, fmt.Errorf("invalid order id: %v", err)
	}

	res, err = s.client.GetOrder(s.ctx, token, id)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			return nil, errorHandler.CodeFailedNotFound, errorHandler.ErrNoData
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to get order, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}

func (s *orderService) ListOrders(token string) (res []orders.Order, code int, err error) {
	res, err = s.client.ListOrders(s.ctx, token)
	if err != nil {
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to list orders, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}

func (s *orderService) UpdatePaymentStatus(token string, params orders.UpdatePaymentStatusParams) (res *orders.Order, code int, err error) {
	res, err = s.client.UpdatePaymentStatus(s.ctx, token, params)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			return nil, errorHandler.CodeFailedNotFound, errorHandler.ErrNoData
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to update payment status, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}

// CreatePaymentSession starts a hosted checkout. A session without a
// redirect URL is useless to the storefront, so it is treated as a failure
// even though the gateway call itself succeeded.
func (s *orderService) CreatePaymentSession(token string, params orders.CreatePaymentSessionParams) (res *orders.PaymentSession, code int, err error) {
	res, err = s.client.CreatePaymentSession(s.ctx, token, params)
	if err != nil {
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to create payment session, err: %v", err)
	}

	if res.CheckoutURL == "" {
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("payment session is missing the checkout url")
	}

	return res, errorHandler.CodeSuccessCreate, nil
}
