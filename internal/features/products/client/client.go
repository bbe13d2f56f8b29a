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

	product "github.com/vhnguyenx/storefront-gateway/internal/features/products"
	errorHandler "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

type productClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewProductClient(baseURL string, timeout time.Duration, logger *logrus.Logger) product.IClient {
	return &productClient{
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

// readError maps a non-2xx backend response to an error, surfacing the
// backend's own message when it sent one.
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

func (c *productClient) ListProducts(ctx context.Context) ([]product.Product, error) {
	url := fmt.Sprintf("%s/product", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create list products request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("ProductClient: ListProducts request failed: %v", err)
		return nil, fmt.Errorf("failed to communicate with catalog backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Errorf("ProductClient: ListProducts returned status %d", resp.StatusCode)
		return nil, readError(resp, "list products")
	}

	var res []product.Product
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode product list: %w", err)
	}

	c.log.Infof("ProductClient: Fetched %d products", len(res))
	return res, nil
}

func (c *productClient) GetProductByID(ctx context.Context, id int32) (*product.Product, error) {
	url := fmt.Sprintf("%s/product/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create get product request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("ProductClient: GetProductByID(%d) request failed: %v", id, err)
		return nil, fmt.Errorf("failed to communicate with catalog backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warnf("ProductClient: GetProductByID(%d) returned status %d", id, resp.StatusCode)
		return nil, readError(resp, "get product")
	}

	var res product.Product
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}

	return &res, nil
}

type productPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	Stock       int32   `json:"stock"`
}

func (c *productClient) CreateProduct(ctx context.Context, token string, arg product.CreateProductParams) (*product.Product, error) {
	payload := productPayload{
		Name:        arg.Name,
		Description: arg.Description,
		Price:       arg.Price,
		Image:       arg.Image,
		Category:    arg.Category,
		Stock:       arg.Stock,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare create product payload: %w", err)
	}

	url := fmt.Sprintf("%s/product", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create product request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("ProductClient: CreateProduct request failed: %v", err)
		return nil, fmt.Errorf("failed to communicate with catalog backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.log.Errorf("ProductClient: CreateProduct returned status %d", resp.StatusCode)
		return nil, readError(resp, "create product")
	}

	var res product.Product
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode created product: %w", err)
	}

	c.log.Infof("ProductClient: Created product %d", res.ID)
	return &res, nil
}

func (c *productClient) UpdateProduct(ctx context.Context, token string, arg product.UpdateProductParams) (*product.Product, error) {
	payload := productPayload{
		Name:        arg.Name,
		Description: arg.Description,
		Price:       arg.Price,
		Image:       arg.Image,
		Category:    arg.Category,
		Stock:       arg.Stock,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare update product payload: %w", err)
	}

	url := fmt.Sprintf("%s/product/%d", c.baseURL, arg.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create update product request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("ProductClient: UpdateProduct(%d) request failed: %v", arg.ID, err)
		return nil, fmt.Errorf("failed to communicate with catalog backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Errorf("ProductClient: UpdateProduct(%d) returned status %d", arg.ID, resp.StatusCode)
		return nil, readError(resp, "update product")
	}

	var res product.Product
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode updated product: %w", err)
	}

	return &res, nil
}

func (c *productClient) DeleteProduct(ctx context.Context, token string, id int32) error {
	url := fmt.Sprintf("%s/product/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete product request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("ProductClient: DeleteProduct(%d) request failed: %v", id, err)
		return fmt.Errorf("failed to communicate with catalog backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		c.log.Errorf("ProductClient: DeleteProduct(%d) returned status %d", id, resp.StatusCode)
		return readError(resp, "delete product")
	}

	c.log.Infof("ProductClient: Deleted product %d", id)
	return nil
}
