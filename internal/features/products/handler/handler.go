package handler

import (
	"io"
	"mime/multipart"
	"strings"

	product "github.com/vhnguyenx/storefront-gateway/internal/features/products"
	mid "github.com/vhnguyenx/storefront-gateway/pkg/middleware"
	converter "github.com/vhnguyenx/storefront-gateway/pkg/utils/converter"
	responses "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/gin-gonic/gin"
)

type productHandler struct {
	router   *gin.Engine
	service  product.IService
	validate *validator.Validate
	trans    ut.Translator
}

func NewProductHandler(router *gin.Engine, service product.IService, authMiddleware gin.HandlerFunc) {
	handler := &productHandler{
		router:   router,
		service:  service,
		validate: validator.New(),
	}

	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(handler.validate, trans)
	handler.trans = trans

	router.GET("/api/v1/products", handler.listProducts)
	router.GET("/api/v1/products/:id", handler.getProduct)

	protected := router.Group("/api/v1/products", authMiddleware)
	protected.POST("", handler.createProduct)
	protected.POST("/refresh", handler.refreshCatalog)
	protected.PUT("/:id", handler.updateProduct)
	protected.DELETE("/:id", handler.deleteProduct)
}

func translateError(trans ut.Translator, err error) (errTrans []string) {
	errs := err.(validator.ValidationErrors)
	a := (errs.Translate(trans))
	for _, val := range a {
		errTrans = append(errTrans, val)
	}

	return
}

func (h *productHandler) listProducts(c *gin.Context) {
	var request listProductsReq

	if err := c.ShouldBindQuery(&request); err != nil {
		responses.ErrorJSON(c, responses.CodeFailedValidation, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		errTranslated := translateError(h.trans, err)
		responses.ErrorJSON(c, responses.CodeFailedValidation, errTranslated, c.Request.RemoteAddr)
		return
	}

	params := product.ViewParams{
		Query:     request.Query,
		Category:  request.Category,
		MinPrice:  request.MinPrice,
		MaxPrice:  request.MaxPrice,
		SortBy:    product.SortKey(request.SortBy),
		SortOrder: product.SortDirection(request.SortOrder),
		Page:      request.Page,
		PageSize:  request.PageSize,
	}
	if params.SortBy == "" {
		params.SortBy = product.SortByName
	}
	if params.SortOrder == "" {
		params.SortOrder = product.SortAsc
	}
	if params.Page == 0 {
		params.Page = 1
	}

	view, categories, code, err := h.service.ListProducts(params)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponsePagination(
		toListProductsResp(view, categories),
		view.CurrentPage, view.PageSize, view.TotalPages, view.TotalItems,
		view.HasNextPage, view.HasPrevPage,
		"list of products",
	)
	c.IndentedJSON(code, response)
}

func (h *productHandler) getProduct(c *gin.Context) {
	productID := c.Param("id")

	res, code, err := h.service.GetProductByID(productID)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toProductResp(res), code, "success get product")
	c.IndentedJSON(code, response)
}

func (h *productHandler) refreshCatalog(c *gin.Context) {
	code, err := h.service.RefreshCatalog()
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessResponse("catalog refreshed")
	c.IndentedJSON(code, response)
}

// readImageFile pulls the optional image file out of a multipart request.
func readImageFile(file *multipart.FileHeader) (data []byte, name, contentType string, err error) {
	opened, err := file.Open()
	if err != nil {
		return nil, "", "", err
	}
	defer opened.Close()

	data, err = io.ReadAll(opened)
	if err != nil {
		return nil, "", "", err
	}

	return data, file.Filename, file.Header.Get("Content-Type"), nil
}

// bindProductForm accepts either a JSON body or a multipart form with an
// optional image file.
func (h *productHandler) bindProductForm(c *gin.Context) (req createProductReq, imageData []byte, imageName, imageType string, ok bool) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/form-data") {
		price, err := converter.ConvertStrToFloat64(c.DefaultPostForm("price", "0"))
		if err != nil {
			responses.ErrorJSON(c, responses.CodeFailedValidation, []string{"price must be a number"}, c.Request.RemoteAddr)
			return req, nil, "", "", false
		}
		stock, err := converter.ConvertStrToInt32(c.DefaultPostForm("stock", "0"))
		if err != nil {
			responses.ErrorJSON(c, responses.CodeFailedValidation, []string{"stock must be a number"}, c.Request.RemoteAddr)
			return req, nil, "", "", false
		}

		req = createProductReq{
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
			Price:       price,
			Category:    c.PostForm("category"),
			Stock:       stock,
			Image:       c.PostForm("image"),
		}

		if file, err := c.FormFile("image_file"); err == nil {
			imageData, imageName, imageType, err = readImageFile(file)
			if err != nil {
				responses.ErrorJSON(c, responses.CodeFailedUser, []string{"failed to read image file"}, c.Request.RemoteAddr)
				return req, nil, "", "", false
			}
		}
	} else {
		if err := c.BindJSON(&req); err != nil {
			responses.ErrorJSON(c, responses.CodeFailedValidation, []string{err.Error()}, c.Request.RemoteAddr)
			return req, nil, "", "", false
		}
	}

	if err := h.validate.Struct(req); err != nil {
		errTranslated := translateError(h.trans, err)
		responses.ErrorJSON(c, responses.CodeFailedValidation, errTranslated, c.Request.RemoteAddr)
		return req, nil, "", "", false
	}

	return req, imageData, imageName, imageType, true
}

func (h *productHandler) createProduct(c *gin.Context) {
	request, imageData, imageName, imageType, ok := h.bindProductForm(c)
	if !ok {
		return
	}

	serviceArg := product.CreateProductParams{
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Category:    request.Category,
		Stock:       request.Stock,
		Image:       request.Image,
		ImageData:   imageData,
		ImageName:   imageName,
		ImageType:   imageType,
	}

	res, code, err := h.service.CreateProduct(mid.RawToken(c), serviceArg)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toProductResp(res), code, "create new product success")
	c.IndentedJSON(code, response)
}

func (h *productHandler) updateProduct(c *gin.Context) {
	id, err := converter.ConvertStrToInt32(c.Param("id"))
	if err != nil {
		responses.ErrorJSON(c, responses.CodeFailedUser, []string{"invalid product id"}, c.Request.RemoteAddr)
		return
	}

	request, imageData, imageName, imageType, ok := h.bindProductForm(c)
	if !ok {
		return
	}

	serviceArg := product.UpdateProductParams{
		ID:          id,
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Category:    request.Category,
		Stock:       request.Stock,
		Image:       request.Image,
		ImageData:   imageData,
		ImageName:   imageName,
		ImageType:   imageType,
	}

	res, code, err := h.service.UpdateProduct(mid.RawToken(c), serviceArg)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessWithDataResponse(toProductResp(res), code, "update success")
	c.IndentedJSON(code, response)
}

func (h *productHandler) deleteProduct(c *gin.Context) {
	productID := c.Param("id")

	code, err := h.service.DeleteProduct(mid.RawToken(c), productID)
	if err != nil {
		responses.ErrorJSON(c, code, []string{err.Error()}, c.Request.RemoteAddr)
		return
	}

	response := responses.SuccessResponse("success deleted product")
	c.IndentedJSON(code, response)
}
