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

	cart "github.com/vhnguyenx/storefront-gateway/internal/features/cart"
	errorHandler "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

type cartClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewCartClient(baseURL string, timeout time.Duration, logger *logrus.Logger) cart.IClient {
	return &cartClient{
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

// do sends one authenticated JSON request and returns the response on 2xx.
func (c *cartClient) do(ctx context.Context, method, url, token string, payload interface{}, action string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare %s payload: %w", action, err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", action, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("CartClient: %s request failed: %v", action, err)
		return nil, fmt.Errorf("failed to communicate with cart backend: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		c.log.Errorf("CartClient: %s returned status %d", action, resp.StatusCode)
		return nil, readError(resp, action)
	}

	return resp, nil
}

func (c *cartClient) GetCart(ctx context.Context, token string) (*cart.Cart, error) {
	url := fmt.Sprintf("%s/cart", c.baseURL)
	resp, err := c.do(ctx, http.MethodGet, url, token, nil, "get cart")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var res cart.Cart
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	return &res, nil
}

func (c *cartClient) AddToCart(ctx context.Context, token string, arg cart.AddToCartParams) error {
	payload := map[string]int32{
		"productId": arg.ProductID,
		"quantity":  arg.Quantity,
	}

	url := fmt.Sprintf("%s/cart", c.baseURL)
	resp, err := c.do(ctx, http.MethodPost, url, token, payload, "add to cart")
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

func (c *cartClient) UpdateCartItem(ctx context.Context, token string, arg cart.UpdateCartItemParams) error {
	payload := map[string]int32{
		"quantity": arg.Quantity,
	}

	url := fmt.Sprintf("%s/cart/%d", c.baseURL, arg.ItemID)
	resp, err := c.do(ctx, http.MethodPut, url, token, payload, "update cart item")
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

func (c *cartClient) RemoveFromCart(ctx context.Context, token string, itemID int32) error {
	url := fmt.Sprintf("%s/cart/%d", c.baseURL, itemID)
	resp, err := c.do(ctx, http.MethodDelete, url, token, nil, "remove cart item")
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

func (c *cartClient) ClearCart(ctx context.Context, token string) error {
	url := fmt.Sprintf("%s/cart", c.baseURL)
	resp, err := c.do(ctx, http.MethodDelete, url, token, nil, "clear cart")
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}
