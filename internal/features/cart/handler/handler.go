package handler

import (
	cart "github.com/vhnguyenx/storefront-gateway/internal/features/cart"
	mid "github.com/vhnguyenx/storefront-gateway/pkg/middleware"
	converter "github.com/vhnguyenx/storefront-gateway/pkg/utils/converter"
	responses "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/gin-gonic/gin"
)

type cartHandler struct {
	router   *gin.Engine
	service  cart.IService
	validate *validator.Validate
	trans    ut.Translator
}

func NewCartHandler(router *gin.Engine, service cart.IService, authMiddleware gin.HandlerFunc) {
	handler := &cartHandler{
		router:   router,
		service:  service,
		validate: validator.New(),
	}

	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(handler.validate, trans)
	handler.trans = trans

	group := router.Group("/api/v1/cart", authMiddleware)
	group.GET("", handler.getCart)
	group.POST("", handler.addToCart)
	group.PUT("/:id", handler.updateCartItem)
	group.DELETE("/:id", handler.removeFromCart)
	group.DELETE("", handler.clearCart)
}

func translateError(trans ut.Translator, err error) (errTrans []string) {
	errs := err.(validator.ValidationErrors)
	a := (errs.Translate(trans))
	for _, val := range a {
		errTrans = append(errTrans, val)
	}

	return
}

func (h *cartHandler) getCart(c *gin.Context) {
	res, code, err := h.service.GetCart(mid.RawToken(c))
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toCartResp(res), code, "success get cart")
	c.IndentedJSON(code, response)
}

func (h *cartHandler) addToCart(c *gin.Context) {
	var request addToCartReq

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

	serviceArg := cart.AddToCartParams{
		ProductID: request.ProductID,
		Quantity:  request.Quantity,
	}

	res, code, err := h.service.AddToCart(mid.RawToken(c), serviceArg)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toCartResp(res), code, "added to cart")
	c.IndentedJSON(code, response)
}

func (h *cartHandler) updateCartItem(c *gin.Context) {
	var request updateCartItemReq

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

	itemID, err := converter.ConvertStrToInt32(c.Param("id"))
	if err != nil {
		responses.ErrorJSON(c, responses.CodeFailedUser, []string{"invalid cart item id"}, c.Request.RemoteAddr)
		return
	}

	serviceArg := cart.UpdateCartItemParams{
		ItemID:   itemID,
		Quantity: request.Quantity,
	}

	res, code, err := h.service.UpdateCartItem(mid.RawToken(c), serviceArg)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toCartResp(res), code, "cart item updated")
	c.IndentedJSON(code, response)
}

func (h *cartHandler) removeFromCart(c *gin.Context) {
	itemID := c.Param("id")

	res, code, err := h.service.RemoveFromCart(mid.RawToken(c), itemID)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toCartResp(res), code, "cart item removed")
	c.IndentedJSON(code, response)
}

func (h *cartHandler) clearCart(c *gin.Context) {
	code, err := h.service.ClearCart(mid.RawToken(c))
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessResponse("cart cleared")
	c.IndentedJSON(code, response)
}
