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

	auth "github.com/vhnguyenx/storefront-gateway/internal/features/auth"
	errorHandler "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

type authClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewAuthClient(baseURL string, timeout time.Duration, logger *logrus.Logger) auth.IClient {
	return &authClient{
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
	if resp.StatusCode == http.StatusUnauthorized {
		return errorHandler.ErrUnauthorized
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	var backendErr backendError
	if err := json.Unmarshal(bodyBytes, &backendErr); err == nil && backendErr.Message != "" {
		return fmt.Errorf("failed to %s: %s", action, backendErr.Message)
	}

	return fmt.Errorf("failed to %s: backend returned status %d", action, resp.StatusCode)
}

func (c *authClient) do(ctx context.Context, method, url, token string, payload, out interface{}, action string) error {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("AuthClient: %s request failed: %v", action, err)
		return fmt.Errorf("failed to communicate with auth backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Errorf("AuthClient: %s returned status %d", action, resp.StatusCode)
		return readError(resp, action)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", action, err)
	}

	return nil
}

func (c *authClient) Register(ctx context.Context, arg auth.RegisterParams) (*auth.AuthResponse, error) {
	payload := map[string]string{
		"email":    arg.Email,
		"password": arg.Password,
		"fullName": arg.FullName,
		"phone":    arg.Phone,
	}

	var res auth.AuthResponse
	url := fmt.Sprintf("%s/auth/register", c.baseURL)
	if err := c.do(ctx, http.MethodPost, url, "", payload, &res, "register"); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *authClient) Login(ctx context.Context, arg auth.LoginParams) (*auth.AuthResponse, error) {
	payload := map[string]string{
		"email":    arg.Email,
		"password": arg.Password,
	}

	var res auth.AuthResponse
	url := fmt.Sprintf("%s/auth/login", c.baseURL)
	if err := c.do(ctx, http.MethodPost, url, "", payload, &res, "login"); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *authClient) GetProfile(ctx context.Context, token string) (*auth.User, error) {
	var res auth.User
	url := fmt.Sprintf("%s/auth/profile", c.baseURL)
	if err := c.do(ctx, http.MethodGet, url, token, nil, &res, "get profile"); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *authClient) UpdateProfile(ctx context.Context, token string, arg auth.UpdateProfileParams) (*auth.User, error) {
	payload := map[string]string{
		"fullName": arg.FullName,
		"phone":    arg.Phone,
		"address":  arg.Address,
	}

	var res auth.User
	url := fmt.Sprintf("%s/auth/profile", c.baseURL)
	if err := c.do(ctx, http.MethodPut, url, token, payload, &res, "update profile"); err != nil {
		return nil, err
	}

	return &res, nil
}
