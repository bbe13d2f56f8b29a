package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	product "github.com/vhnguyenx/storefront-gateway/internal/features/products"
	imagehost "github.com/vhnguyenx/storefront-gateway/pkg/imagehost"
	converter "github.com/vhnguyenx/storefront-gateway/pkg/utils/converter"
	errorHandler "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

type productService struct {
	ctx      context.Context
	client   product.IClient
	uploader imagehost.IUploader
	view     *product.CatalogView

	loadMu sync.Mutex
	loaded bool
}

func NewProductService(ctx context.Context, client product.IClient, uploader imagehost.IUploader, view *product.CatalogView) product.IService {
	return &productService{
		ctx:      ctx,
		client:   client,
		uploader: uploader,
		view:     view,
	}
}

// ensureLoaded fetches the catalog once, lazily. A failed fetch leaves the
// service unloaded so the next call retries.
func (s *productService) ensureLoaded() error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.loaded {
		return nil
	}

	list, err := s.client.ListProducts(s.ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch products, err: %v", err)
	}

	s.view.ReplaceCollection(list)
	s.loaded = true

	return nil
}

// ListProducts applies one full set of view parameters and returns the
// derived page. The whole apply-and-read is a single engine operation, so
// concurrent requests each get a view computed under their own parameters.
func (s *productService) ListProducts(params product.ViewParams) (view product.DerivedView, categories []string, code int, err error) {
	if err = s.ensureLoaded(); err != nil {
		return product.DerivedView{}, nil, errorHandler.CodeFailedUpstream, err
	}

	view, categories = s.view.ApplyParams(params)

	return view, categories, errorHandler.CodeSuccess, nil
}

func (s *productService) RefreshCatalog() (code int, err error) {
	list, err := s.client.ListProducts(s.ctx)
	if err != nil {
		return errorHandler.CodeFailedUpstream, fmt.Errorf("failed to refresh catalog, err: %v", err)
	}

	s.view.ReplaceCollection(list)

	s.loadMu.Lock()
	s.loaded = true
	s.loadMu.Unlock()

	return errorHandler.CodeSuccess, nil
}

func (s *productService) GetProductByID(id string) (res *product.Product, code int, err error) {
	newID, err := converter.ConvertStrToInt32(id)
	if err != nil {
		return nil, errorHandler.CodeFailedUser, fmt.Errorf("invalid product id: %v", err)
	}

	res, err = s.client.GetProductByID(s.ctx, newID)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			return nil, errorHandler.CodeFailedNotFound, errorHandler.ErrNoData
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to get product, err: %v", err)
	}

	return res, errorHandler.CodeSuccess, nil
}

func (s *productService) CreateProduct(token string, params product.CreateProductParams) (res *product.Product, code int, err error) {
	// upload the image first, a failed upload aborts before any backend call
	if len(params.ImageData) > 0 {
		url, uploadErr := s.uploader.UploadImage(s.ctx, params.ImageName, params.ImageType, params.ImageData)
		if uploadErr != nil {
			return nil, errorHandler.CodeFailedUser, uploadErr
		}
		params.Image = url
	}

	res, err = s.client.CreateProduct(s.ctx, token, params)
	if err != nil {
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to create product, err: %v", err)
	}

	s.view.InsertProduct(*res)

	return res, errorHandler.CodeSuccessCreate, nil
}

func (s *productService) UpdateProduct(token string, params product.UpdateProductParams) (res *product.Product, code int, err error) {
	if len(params.ImageData) > 0 {
		url, uploadErr := s.uploader.UploadImage(s.ctx, params.ImageName, params.ImageType, params.ImageData)
		if uploadErr != nil {
			return nil, errorHandler.CodeFailedUser, uploadErr
		}
		params.Image = url
	} else if params.Image == "" {
		// keep the existing image when no replacement is supplied
		if existing, ok := s.view.Lookup(params.ID); ok {
			params.Image = existing.Image
		}
	}

	res, err = s.client.UpdateProduct(s.ctx, token, params)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			return nil, errorHandler.CodeFailedNotFound, errorHandler.ErrNoData
		}
		return nil, errorHandler.CodeFailedUpstream, fmt.Errorf("failed to update product, err: %v", err)
	}

	s.view.UpdateProduct(*res)

	return res, errorHandler.CodeSuccess, nil
}

func (s *productService) DeleteProduct(token string, idInput string) (code int, err error) {
	id, err := converter.ConvertStrToInt32(idInput)
	if err != nil {
		return errorHandler.CodeFailedUser, fmt.Errorf("invalid product id: %v", err)
	}

	err = s.client.DeleteProduct(s.ctx, token, id)
	if err != nil {
		if errors.Is(err, errorHandler.ErrNoData) {
			return errorHandler.CodeFailedNotFound, errorHandler.ErrNoData
		}
		return errorHandler.CodeFailedUpstream, fmt.Errorf("failed to delete product, err: %v", err)
	}

	s.view.RemoveProduct(id)

	return errorHandler.CodeSuccess, nil
}
