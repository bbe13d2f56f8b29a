package handler

type addToCartReq struct {
	ProductID int32 `json:"productId" validate:"required,min=1"`
	Quantity  int32 `json:"quantity" validate:"required,min=1"`
}

type updateCartItemReq struct {
	Quantity int32 `json:"quantity" validate:"required,min=1"`
}
