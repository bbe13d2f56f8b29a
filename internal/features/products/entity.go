package products

import (
	"context"
)

// Product mirrors the backend catalog record. The backend owns the id and
// every monetary value; this service never derives its own.
type Product struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	Stock       int32   `json:"stock"`
	CreatedBy   int32   `json:"createdBy,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// params for service method
type CreateProductParams struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int32
	Image       string // existing image URL

	// optional raw image upload, sent to the image host before the
	// backend call
	ImageData []byte
	ImageName string
	ImageType string
}

type UpdateProductParams struct {
	ID          int32
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int32
	Image       string

	ImageData []byte
	ImageName string
	ImageType string
}

type SortKey string

const (
	SortByName    SortKey = "name"
	SortByPrice   SortKey = "price"
	SortByCreated SortKey = "created"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ViewParams is one full set of search/filter/sort/page inputs. A nil price
// bound means that side of the range is open.
type ViewParams struct {
	Query     string
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    SortKey
	SortOrder SortDirection
	Page      int
	PageSize  int
}

// DerivedView is the computed page of the catalog. It is a value snapshot,
// recomputed as a whole on every state change and never mutated in place.
type DerivedView struct {
	Products    []Product
	TotalItems  int
	TotalPages  int
	CurrentPage int
	PageSize    int
	HasNextPage bool
	HasPrevPage bool
}

type IService interface {
	ListProducts(params ViewParams) (view DerivedView, categories []string, code int, err error)
	RefreshCatalog() (code int, err error)
	GetProductByID(id string) (res *Product, code int, err error)
	CreateProduct(token string, params CreateProductParams) (res *Product, code int, err error)
	UpdateProduct(token string, params UpdateProductParams) (res *Product, code int, err error)
	DeleteProduct(token string, id string) (code int, err error)
}

type IClient interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int32) (*Product, error)
	CreateProduct(ctx context.Context, token string, arg CreateProductParams) (*Product, error)
	UpdateProduct(ctx context.Context, token string, arg UpdateProductParams) (*Product, error)
	DeleteProduct(ctx context.Context, token string, id int32) error
}
