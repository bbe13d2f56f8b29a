package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	orders "github.com/vhnguyenx/storefront-gateway/internal/features/orders"
	errorHandler "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

type orderClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewOrderClient(baseURL string, timeout time.Duration, logger *logrus.Logger) orders.IClient {
	return &orderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

type backendError struct {
	Message string `json:"message"`
}

func readError(resp *http.Response, action string) error {
	if resp.StatusCode == http.StatusNotFound {
		return errorHandler.ErrNoData
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	var backendErr backendError
	if err := json.Unmarshal(bodyBytes, &backendErr); err == nil && backendErr.Message != "" {
		return fmt.Errorf("failed to %s: %s", action, backendErr.Message)
	}

	return fmt.Errorf("failed to %s: backend returned status %d", action, resp.StatusCode)
}

func (c *orderClient) do(ctx context.Context, method, url, token string, payload, out interface{}, action string) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to prepare %s payload: %w", action, err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", action, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("OrderClient: %s request failed: %v", action, err)
		return fmt.Errorf("failed to communicate with order backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Errorf("OrderClient: %s returned status %d", action, resp.StatusCode)
		return readError(resp, action)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", action, err)
		}
	}

	return nil
}

type createOrderPayload struct {
	ShippingAddress string `json:"shippingAddress"`
	Phone           string `json:"phone"`
	Notes           string `json:"notes,omitempty"`
	PaymentMethod   string `json:"paymentMethod"`
}

func (c *orderClient) CreateOrder(ctx context.Context, token string, arg orders.CreateOrderParams) (*orders.Order, error) {
	payload := createOrderPayload{
		ShippingAddress: arg.ShippingAddress,
		Phone:           arg.Phone,
		Notes:           arg.Notes,
		PaymentMethod:   string(arg.PaymentMethod),
	}

	var res orders.Order
	url := fmt.Sprintf("%s/order", c.baseURL)
	if err := c.do(ctx, http.MethodPost, url, token, payload, &res, "create order"); err != nil {
		return nil, err
	}

	c.log.Infof("OrderClient: Created order %d", res.ID)
	return &res, nil
}

func (c *orderClient) GetOrder(ctx context.Context, token string, id int32) (*orders.Order, error) {
	var res orders.Order
	url := fmt.Sprintf("%s/order/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodGet, url, token, nil, &res, "get order"); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *orderClient) ListOrders(ctx context.Context, token string) ([]orders.Order, error) {
	var res []orders.Order
	url := fmt.Sprintf("%s/order", c.baseURL)
	if err := c.do(ctx, http.MethodGet, url, token, nil, &res, "list orders"); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *orderClient) UpdatePaymentStatus(ctx context.Context, token string, arg orders.UpdatePaymentStatusParams) (*orders.Order, error) {
	payload := map[string]string{
		"paymentStatus": arg.PaymentStatus,
	}

	var res orders.Order
	url := fmt.Sprintf("%s/order/%d/payment-status", c.baseURL, arg.OrderID)
	if err := c.do(ctx, http.MethodPut, url, token, payload, &res, "update payment status"); err != nil {
		return nil, err
	}

	return &res, nil
}

type paymentSessionPayload struct {
	ShippingAddress string `json:"shippingAddress"`
	Phone           string `json:"phone"`
	Notes           string `json:"notes,omitempty"`
}

func (c *orderClient) CreatePaymentSession(ctx context.Context, token string, arg orders.CreatePaymentSessionParams) (*orders.PaymentSession, error) {
	payload := paymentSessionPayload{
		ShippingAddress: arg.ShippingAddress,
		Phone:           arg.Phone,
		Notes:           arg.Notes,
	}

	var res orders.PaymentSession
	url := fmt.Sprintf("%s/PayOSPayment", c.baseURL)
	if err := c.do(ctx, http.MethodPost, url, token, payload, &res, "create payment session"); err != nil {
		return nil, err
	}

	return &res, nil
}
