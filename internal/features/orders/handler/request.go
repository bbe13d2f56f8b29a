package handler

type createOrderReq struct {
	ShippingAddress string `json:"shippingAddress" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Notes           string `json:"notes" validate:"omitempty"`
	PaymentMethod   string `json:"paymentMethod" validate:"required,oneof=COD PayOS"`
}

type updatePaymentStatusReq struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=unpaid paid failed"`
}

type paymentSessionReq struct {
	ShippingAddress string `json:"shippingAddress" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Notes           string `json:"notes" validate:"omitempty"`
}
