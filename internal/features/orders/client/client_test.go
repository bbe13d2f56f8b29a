package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orders "github.com/vhnguyenx/storefront-gateway/internal/features/orders"
	errorHandler "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/order", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "12 Main St", payload["shippingAddress"])
		assert.Equal(t, "COD", payload["paymentMethod"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":5,"totalAmount":30,"status":"pending","paymentStatus":"unpaid","paymentMethod":"COD"}`))
	}))
	defer server.Close()

	orderClient := NewOrderClient(server.URL, time.Second, newTestLogger())

	res, err := orderClient.CreateOrder(context.Background(), "token-123", orders.CreateOrderParams{
		ShippingAddress: "12 Main St",
		Phone:           "0123456789",
		PaymentMethod:   orders.PaymentMethodCOD,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(5), res.ID)
	assert.Equal(t, "unpaid", res.PaymentStatus)
}

func TestGetOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/order/5":
			w.Write([]byte(`{"id":5,"totalAmount":30,"status":"pending","items":[{"productId":1,"productName":"Red Shirt","quantity":3,"price":10,"subtotal":30}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"order not found"}`))
		}
	}))
	defer server.Close()

	orderClient := NewOrderClient(server.URL, time.Second, newTestLogger())

	t.Run("success", func(t *testing.T) {
		res, err := orderClient.GetOrder(context.Background(), "token-123", 5)
		require.NoError(t, err)
		assert.Equal(t, int32(5), res.ID)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Red Shirt", res.Items[0].ProductName)
	})

	t.Run("failed_not_found", func(t *testing.T) {
		_, err := orderClient.GetOrder(context.Background(), "token-123", 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, errorHandler.ErrNoData)
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/order/5/payment-status", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "paid", payload["paymentStatus"])

		w.Write([]byte(`{"id":5,"paymentStatus":"paid"}`))
	}))
	defer server.Close()

	orderClient := NewOrderClient(server.URL, time.Second, newTestLogger())

	res, err := orderClient.UpdatePaymentStatus(context.Background(), "token-123", orders.UpdatePaymentStatusParams{
		OrderID:       5,
		PaymentStatus: "paid",
	})
	require.NoError(t, err)
	assert.Equal(t, "paid", res.PaymentStatus)
}

func TestCreatePaymentSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/PayOSPayment", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"orderCode":"ORD-77","checkoutUrl":"https://pay.example.com/ORD-77"}`))
	}))
	defer server.Close()

	orderClient := NewOrderClient(server.URL, time.Second, newTestLogger())

	res, err := orderClient.CreatePaymentSession(context.Background(), "token-123", orders.CreatePaymentSessionParams{
		ShippingAddress: "12 Main St",
		Phone:           "0123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-77", res.OrderCode)
	assert.Equal(t, "https://pay.example.com/ORD-77", res.CheckoutURL)
}

func TestBackendErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"cart is empty"}`))
	}))
	defer server.Close()

	orderClient := NewOrderClient(server.URL, time.Second, newTestLogger())

	_, err := orderClient.CreateOrder(context.Background(), "token-123", orders.CreateOrderParams{
		ShippingAddress: "12 Main St",
		Phone:           "0123456789",
		PaymentMethod:   orders.PaymentMethodCOD,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart is empty")
}
