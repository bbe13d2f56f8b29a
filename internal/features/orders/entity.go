package orders

import (
	"context"
)

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodHosted PaymentMethod = "PayOS"
)

// Order and OrderItem mirror the backend order records. Totals and statuses
// are backend-owned.
type OrderItem struct {
	ProductID    int32   `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage,omitempty"`
	Quantity     int32   `json:"quantity"`
	Price        float64 `json:"price"`
	Subtotal     float64 `json:"subtotal"`
}

type Order struct {
	ID              int32       `json:"id"`
	UserID          int32       `json:"userId"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"paymentStatus"`
	PaymentMethod   string      `json:"paymentMethod"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       string      `json:"createdAt,omitempty"`
	Items           []OrderItem `json:"items"`
}

// PaymentSession is the hosted checkout handle returned by the payment
// gateway, the user is redirected to CheckoutURL.
type PaymentSession struct {
	OrderCode   string `json:"orderCode"`
	CheckoutURL string `json:"checkoutUrl"`
}

// params for service method
type CreateOrderParams struct {
	ShippingAddress string
	Phone           string
	Notes           string
	PaymentMethod   PaymentMethod
}

type CreatePaymentSessionParams struct {
	ShippingAddress string
	Phone           string
	Notes           string
}

type UpdatePaymentStatusParams struct {
	OrderID       int32
	PaymentStatus string
}

type IService interface {
	CreateOrder(token string, params CreateOrderParams) (res *Order, code int, err error)
	GetOrder(token string, id string) (res *Order, code int, err error)
	ListOrders(token string) (res []Order, code int, err error)
	UpdatePaymentStatus(token string, params UpdatePaymentStatusParams) (res *Order, code int, err error)
	CreatePaymentSession(token string, params CreatePaymentSessionParams) (res *PaymentSession, code int, err error)
}

type IClient interface {
	CreateOrder(ctx context.Context, token string, arg CreateOrderParams) (*Order, error)
	GetOrder(ctx context.Context, token string, id int32) (*Order, error)
	ListOrders(ctx context.Context, token string) ([]Order, error)
	UpdatePaymentStatus(ctx context.Context, token string, arg UpdatePaymentStatusParams) (*Order, error)
	CreatePaymentSession(ctx context.Context, token string, arg CreatePaymentSessionParams) (*PaymentSession, error)
}
