package handler

import (
	product "github.com/vhnguyenx/storefront-gateway/internal/features/products"
)

type productResp struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	Stock       int32   `json:"stock"`
}

func toProductResp(arg *product.Product) (res productResp) {
	res.ID = arg.ID
	res.Name = arg.Name
	res.Description = arg.Description
	res.Price = arg.Price
	res.Image = arg.Image
	res.Category = arg.Category
	res.Stock = arg.Stock

	return
}

type listProductsResp struct {
	Products   []productResp `json:"products"`
	Categories []string      `json:"categories"`
}

func toListProductsResp(view product.DerivedView, categories []string) (res listProductsResp) {
	res.Products = make([]productResp, len(view.Products))
	for i := range view.Products {
		res.Products[i] = toProductResp(&view.Products[i])
	}
	res.Categories = categories

	return
}
