package handler

import (
	orders "github.com/vhnguyenx/storefront-gateway/internal/features/orders"
	mid "github.com/vhnguyenx/storefront-gateway/pkg/middleware"
	converter "github.com/vhnguyenx/storefront-gateway/pkg/utils/converter"
	responses "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/gin-gonic/gin"
)

type orderHandler struct {
	router   *gin.Engine
	service  orders.IService
	validate *validator.Validate
	trans    ut.Translator
}

func NewOrderHandler(router *gin.Engine, service orders.IService, authMiddleware gin.HandlerFunc) {
	handler := &orderHandler{
		router:   router,
		service:  service,
		validate: validator.New(),
	}

	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(handler.validate, trans)
	handler.trans = trans

	group := router.Group("/api/v1/orders", authMiddleware)
	group.POST("", handler.createOrder)
	group.GET("", handler.listOrders)
	group.GET("/:id", handler.getOrder)
	group.PUT("/:id/payment-status", handler.updatePaymentStatus)
	group.POST("/payment-session", handler.createPaymentSession)
}

func translateError(trans ut.Translator, err error) (errTrans []string) {
	errs := err.(validator.ValidationErrors)
	a := (errs.Translate(trans))
	for _, val := range a {
		errTrans = append(errTrans, val)
	}

	return
}

func (h *orderHandler) createOrder(c *gin.Context) {
	var request createOrderReq

	err := c.BindJSON(&request)
	if err != nil {
		responses.ErrorJSON(c, responses.CodeFailedValidation, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	err = h.validate.Struct(request)
	if err != nil {
		errTranslated := translateError(h.trans, err)
		responses.ErrorJSON(c, responses.CodeFailedValidation, errTranslated, c.Request.RemoteAddr)
		return
	}

	serviceArg := orders.CreateOrderParams{
		ShippingAddress: request.ShippingAddress,
		Phone:           request.Phone,
		Notes:           request.Notes,
		PaymentMethod:   orders.PaymentMethod(request.PaymentMethod),
	}

	res, code, err := h.service.CreateOrder(mid.RawToken(c), serviceArg)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toOrderResp(res), code, "success create order")
	c.IndentedJSON(code, response)
}

func (h *orderHandler) listOrders(c *gin.Context) {
	res, code, err := h.service.ListOrders(mid.RawToken(c))
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toOrderListResp(res), code, "success get orders")
	c.IndentedJSON(code, response)
}

func (h *orderHandler) getOrder(c *gin.Context) {
	res, code, err := h.service.GetOrder(mid.RawToken(c), c.Param("id"))
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toOrderResp(res), code, "success get order")
	c.IndentedJSON(code, response)
}

func (h *orderHandler) updatePaymentStatus(c *gin.Context) {
	var request updatePaymentStatusReq

	err := c.BindJSON(&request)
	if err != nil {
		responses.ErrorJSON(c, responses.CodeFailedValidation, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	err = h.validate.Struct(request)
	if err != nil {
		errTranslated := translateError(h.trans, err)
		responses.ErrorJSON(c, responses.CodeFailedValidation, errTranslated, c.Request.RemoteAddr)
		return
	}

	orderID, err := converter.ConvertStrToInt32(c.Param("id"))
	if err != nil {
		responses.ErrorJSON(c, responses.CodeFailedUser, []string{"invalid order id"}, c.Request.RemoteAddr)
		return
	}

	serviceArg := orders.UpdatePaymentStatusParams{
		OrderID:       orderID,
		PaymentStatus: request.PaymentStatus,
	}

	res, code, err := h.service.UpdatePaymentStatus(mid.RawToken(c), serviceArg)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toOrderResp(res), code, "payment status updated")
	c.IndentedJSON(code, response)
}

func (h *orderHandler) createPaymentSession(c *gin.Context) {
	var request paymentSessionReq

	err := c.BindJSON(&request)
	if err != nil {
		responses.ErrorJSON(c, responses.CodeFailedValidation, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	err = h.validate.Struct(request)
	if err != nil {
		errTranslated := translateError(h.trans, err)
		responses.ErrorJSON(c, responses.CodeFailedValidation, errTranslated, c.Request.RemoteAddr)
		return
	}

	serviceArg := orders.CreatePaymentSessionParams{
		ShippingAddress: request.ShippingAddress,
		Phone:           request.Phone,
		Notes:           request.Notes,
	}

	res, code, err := h.service.CreatePaymentSession(mid.RawToken(c), serviceArg)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(paymentSessionResp{
		OrderCode:   res.OrderCode,
		CheckoutURL: res.CheckoutURL,
	}, code, "payment session created")
	c.IndentedJSON(code, response)
}
