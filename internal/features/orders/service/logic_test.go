package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orders "github.com/vhnguyenx/storefront-gateway/internal/features/orders"
	errorHandler "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

type stubClient struct {
	orders      []orders.Order
	nextID      int32
	session     *orders.PaymentSession
	sessionErr  error
	backendDown bool
}

func (c *stubClient) CreateOrder(ctx context.Context, token string, arg orders.CreateOrderParams) (*orders.Order, error) {
	if c.backendDown {
		return nil, errors.New("backend down")
	}
	c.nextID++
	order := orders.Order{
		ID:              c.nextID,
		TotalAmount:     30,
		Status:          "pending",
		PaymentStatus:   "unpaid",
		PaymentMethod:   string(arg.PaymentMethod),
		ShippingAddress: arg.ShippingAddress,
		Phone:           arg.Phone,
		Notes:           arg.Notes,
	}
	c.orders = append(c.orders, order)
	return &order, nil
}

func (c *stubClient) GetOrder(ctx context.Context, token string, id int32) (*orders.Order, error) {
	if c.backendDown {
		return nil, errors.New("backend down")
	}
	for _, order := range c.orders {
		if order.ID == id {
			res := order
			return &res, nil
		}
	}
	return nil, errorHandler.ErrNoData
}

func (c *stubClient) ListOrders(ctx context.Context, token string) ([]orders.Order, error) {
	if c.backendDown {
		return nil, errors.New("backend down")
	}
	res := make([]orders.Order, len(c.orders))
	copy(res, c.orders)
	return res, nil
}

func (c *stubClient) UpdatePaymentStatus(ctx context.Context, token string, arg orders.UpdatePaymentStatusParams) (*orders.Order, error) {
	if c.backendDown {
		return nil, errors.New("backend down")
	}
	for i := range c.orders {
		if c.orders[i].ID == arg.OrderID {
			c.orders[i].PaymentStatus = arg.PaymentStatus
			res := c.orders[i]
			return &res, nil
		}
	}
	return nil, errorHandler.ErrNoData
}

func (c *stubClient) CreatePaymentSession(ctx context.Context, token string, arg orders.CreatePaymentSessionParams) (*orders.PaymentSession, error) {
	if c.sessionErr != nil {
		return nil, c.sessionErr
	}
	return c.session, nil
}

func TestCreateOrder(t *testing.T) {
	client := &stubClient{}
	serviceTest := NewOrderService(context.Background(), client)

	res, code, err := serviceTest.CreateOrder("token-123", orders.CreateOrderParams{
		ShippingAddress: "12 Main St",
		Phone:           "0123456789",
		PaymentMethod:   orders.PaymentMethodCOD,
	})
	require.NoError(t, err)
	assert.Equal(t, errorHandler.CodeSuccessCreate, code)
	assert.Equal(t, int32(1), res.ID)
	assert.Equal(t, "COD", res.PaymentMethod)
	assert.Equal(t, "unpaid", res.PaymentStatus)
}

func TestGetOrder(t *testing.T) {
	client := &stubClient{}
	serviceTest := NewOrderService(context.Background(), client)

	_, _, err := serviceTest.CreateOrder("token-123", orders.CreateOrderParams{
		ShippingAddress: "12 Main St",
		Phone:           "0123456789",
		PaymentMethod:   orders.PaymentMethodCOD,
	})
	require.NoError(t, err)

	testCases := []struct {
		desc string
		id   string
		code int
		err  bool
	}{
		{
			desc: "success",
			id:   "1",
			code: errorHandler.CodeSuccess,
			err:  false,
		}, {
			desc: "failed_not_found",
			id:   "42",
			code: errorHandler.CodeFailedNotFound,
			err:  true,
		}, {
			desc: "failed_invalid_id",
			id:   "1a",
			code: errorHandler.CodeFailedUser,
			err:  true,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			res, code, err := serviceTest.GetOrder("token-123", tC.id)
			assert.Equal(t, tC.code, code)
			if !tC.err {
				require.NoError(t, err)
				assert.Equal(t, int32(1), res.ID)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	client := &stubClient{}
	serviceTest := NewOrderService(context.Background(), client)

	_, _, err := serviceTest.CreateOrder("token-123", orders.CreateOrderParams{
		ShippingAddress: "12 Main St",
		Phone:           "0123456789",
		PaymentMethod:   orders.PaymentMethodHosted,
	})
	require.NoError(t, err)

	res, code, err := serviceTest.UpdatePaymentStatus("token-123", orders.UpdatePaymentStatusParams{
		OrderID:       1,
		PaymentStatus: "paid",
	})
	require.NoError(t, err)
	assert.Equal(t, errorHandler.CodeSuccess, code)
	assert.Equal(t, "paid", res.PaymentStatus)
}

func TestCreatePaymentSession(t *testing.T) {
	testCases := []struct {
		desc    string
		session *orders.PaymentSession
		callErr error
		code    int
		err     bool
		errMsg  string
	}{
		{
			desc:    "success",
			session: &orders.PaymentSession{OrderCode: "ORD-77", CheckoutURL: "https://pay.example.com/ORD-77"},
			code:    errorHandler.CodeSuccessCreate,
			err:     false,
		}, {
			desc:    "failed_missing_checkout_url",
			session: &orders.PaymentSession{OrderCode: "ORD-77"},
			code:    errorHandler.CodeFailedUpstream,
			err:     true,
			errMsg:  "missing the checkout url",
		}, {
			desc:    "failed_gateway_error",
			callErr: errors.New("gateway unavailable"),
			code:    errorHandler.CodeFailedUpstream,
			err:     true,
			errMsg:  "gateway unavailable",
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			client := &stubClient{session: tC.session, sessionErr: tC.callErr}
			serviceTest := NewOrderService(context.Background(), client)

			res, code, err := serviceTest.CreatePaymentSession("token-123", orders.CreatePaymentSessionParams{
				ShippingAddress: "12 Main St",
				Phone:           "0123456789",
			})
			assert.Equal(t, tC.code, code)
			if !tC.err {
				require.NoError(t, err)
				assert.Equal(t, "ORD-77", res.OrderCode)
				assert.NotEmpty(t, res.CheckoutURL)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tC.errMsg)
			}
		})
	}
}

func TestListOrdersBackendFailure(t *testing.T) {
	client := &stubClient{backendDown: true}
	serviceTest := NewOrderService(context.Background(), client)

	_, code, err := serviceTest.ListOrders("token-123")
	require.Error(t, err)
	assert.Equal(t, errorHandler.CodeFailedUpstream, code)
}
