package handler

import (
	cart "github.com/vhnguyenx/storefront-gateway/internal/features/cart"
)

type cartItemResp struct {
	ID           int32   `json:"id"`
	ProductID    int32   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image,omitempty"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int32   `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
	Stock        int32   `json:"stock"`
}

type cartResp struct {
	Items       []cartItemResp `json:"items"`
	TotalAmount float64        `json:"total_amount"`
	TotalItems  int32          `json:"total_items"`
}

func toCartResp(arg *cart.Cart) (res cartResp) {
	res.Items = make([]cartItemResp, len(arg.Items))
	for i, item := range arg.Items {
		res.Items[i] = cartItemResp{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal,
			Stock:        item.Stock,
		}
	}
	res.TotalAmount = arg.TotalAmount
	res.TotalItems = arg.TotalItems

	return
}
