package cart

import (
	"context"
)

// CartItem and Cart mirror the backend cart records. All totals come from
// the backend, the gateway never recomputes them.
type CartItem struct {
	ID           int32   `json:"id"`
	ProductID    int32   `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage,omitempty"`
	ProductPrice float64 `json:"productPrice"`
	Quantity     int32   `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
	Stock        int32   `json:"stock"`
}

type Cart struct {
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	TotalItems  int32      `json:"totalItems"`
}

// params for service method
type AddToCartParams struct {
	ProductID int32
	Quantity  int32
}

type UpdateCartItemParams struct {
	ItemID   int32
	Quantity int32
}

type IService interface {
	GetCart(token string) (res *Cart, code int, err error)
	AddToCart(token string, params AddToCartParams) (res *Cart, code int, err error)
	UpdateCartItem(token string, params UpdateCartItemParams) (res *Cart, code int, err error)
	RemoveFromCart(token string, itemID string) (res *Cart, code int, err error)
	ClearCart(token string) (code int, err error)
}

type IClient interface {
	GetCart(ctx context.Context, token string) (*Cart, error)
	AddToCart(ctx context.Context, token string, arg AddToCartParams) error
	UpdateCartItem(ctx context.Context, token string, arg UpdateCartItemParams) error
	RemoveFromCart(ctx context.Context, token string, itemID int32) error
	ClearCart(ctx context.Context, token string) error
}
