package handler

import (
	orders "github.com/vhnguyenx/storefront-gateway/internal/features/orders"
)

type orderItemResp struct {
	ProductID    int32   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image,omitempty"`
	Quantity     int32   `json:"quantity"`
	Price        float64 `json:"price"`
	Subtotal     float64 `json:"subtotal"`
}

type orderResp struct {
	ID              int32           `json:"id"`
	TotalAmount     float64         `json:"total_amount"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
	Items           []orderItemResp `json:"items"`
}

type paymentSessionResp struct {
	OrderCode   string `json:"order_code"`
	CheckoutURL string `json:"checkout_url"`
}

func toOrderResp(arg *orders.Order) (res orderResp) {
	res = orderResp{
		ID:              arg.ID,
		TotalAmount:     arg.TotalAmount,
		Status:          arg.Status,
		PaymentStatus:   arg.PaymentStatus,
		PaymentMethod:   arg.PaymentMethod,
		ShippingAddress: arg.ShippingAddress,
		Phone:           arg.Phone,
		Notes:           arg.Notes,
		CreatedAt:       arg.CreatedAt,
	}

	res.Items = make([]orderItemResp, len(arg.Items))
	for i, item := range arg.Items {
		res.Items[i] = orderItemResp{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			Price:        item.Price,
			Subtotal:     item.Subtotal,
		}
	}

	return
}

func toOrderListResp(arg []orders.Order) (res []orderResp) {
	res = make([]orderResp, len(arg))
	for i := range arg {
		res[i] = toOrderResp(&arg[i])
	}

	return
}
