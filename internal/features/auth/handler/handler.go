package handler

import (
	auth "github.com/vhnguyenx/storefront-gateway/internal/features/auth"
	mid "github.com/vhnguyenx/storefront-gateway/pkg/middleware"
	responses "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/gin-gonic/gin"
)

type authHandler struct {
	router   *gin.Engine
	service  auth.IService
	validate *validator.Validate
	trans    ut.Translator
}

func NewAuthHandler(router *gin.Engine, service auth.IService, authMiddleware gin.HandlerFunc) {
	handler := &authHandler{
		router:   router,
		service:  service,
		validate: validator.New(),
	}

	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(handler.validate, trans)
	handler.trans = trans

	group := router.Group("/api/v1/auth")
	group.POST("/register", handler.register)
	group.POST("/login", handler.login)

	protected := router.Group("/api/v1/auth", authMiddleware)
	protected.GET("/profile", handler.getProfile)
	protected.PUT("/profile", handler.updateProfile)
}

func translateError(trans ut.Translator, err error) (errTrans []string) {
	errs := err.(validator.ValidationErrors)
	a := (errs.Translate(trans))
	for _, val := range a {
		errTrans = append(errTrans, val)
	}

	return
}

func (h *authHandler) register(c *gin.Context) {
	var request registerReq

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

	serviceArg := auth.RegisterParams{
		Email:    request.Email,
		Password: request.Password,
		FullName: request.FullName,
		Phone:    request.Phone,
	}

	res, code, err := h.service.Register(serviceArg)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toAuthResp(res), code, "success register")
	c.IndentedJSON(code, response)
}

func (h *authHandler) login(c *gin.Context) {
	var request loginReq

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

	serviceArg := auth.LoginParams{
		Email:    request.Email,
		Password: request.Password,
	}

	res, code, err := h.service.Login(serviceArg)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toAuthResp(res), code, "success login")
	c.IndentedJSON(code, response)
}

func (h *authHandler) getProfile(c *gin.Context) {
	res, code, err := h.service.GetProfile(mid.RawToken(c))
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toProfileResp(res), code, "success get profile")
	c.IndentedJSON(code, response)
}

func (h *authHandler) updateProfile(c *gin.Context) {
	var request updateProfileReq

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

	serviceArg := auth.UpdateProfileParams{
		FullName: request.FullName,
		Phone:    request.Phone,
		Address:  request.Address,
	}

	res, code, err := h.service.UpdateProfile(mid.RawToken(c), serviceArg)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toProfileResp(res), code, "profile updated")
	c.IndentedJSON(code, response)
}
