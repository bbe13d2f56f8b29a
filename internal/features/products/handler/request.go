package handler

type createProductReq struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category"`
	Stock       int32   `json:"stock" validate:"min=0"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

type listProductsReq struct {
	Query     string   `form:"query"`
	Category  string   `form:"category"`
	MinPrice  *float64 `form:"min_price" validate:"omitempty,gte=0"`
	MaxPrice  *float64 `form:"max_price" validate:"omitempty,gte=0"`
	SortBy    string   `form:"sort_by" validate:"omitempty,oneof=name price created"`
	SortOrder string   `form:"sort_order" validate:"omitempty,oneof=asc desc"`
	Page      int      `form:"page" validate:"omitempty,min=1"`
	PageSize  int      `form:"page_size" validate:"omitempty,min=1,max=100"`
}
