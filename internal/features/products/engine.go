package products

import (
	"math"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CatalogView holds the authoritative in-memory product collection and the
// active search/filter/sort/page state, and derives the visible page from
// them. Every operation runs the full filter -> sort -> paginate pipeline
// under one lock, so a reader can never observe a partial recompute.
type CatalogView struct {
	mu       sync.Mutex
	collator *collate.Collator

	allProducts []Product
	categories  []string

	query            string
	selectedCategory string
	minPrice         *float64
	maxPrice         *float64
	sortBy           SortKey
	sortOrder        SortDirection
	currentPage      int
	pageSize         int

	view DerivedView
}

func NewCatalogView(pageSize int) *CatalogView {
	if pageSize < 1 {
		pageSize = 1
	}
	v := &CatalogView{
		collator:    collate.New(language.English),
		sortBy:      SortByName,
		sortOrder:   SortAsc,
		currentPage: 1,
		pageSize:    pageSize,
	}
	v.recompute()

	return v
}

func (v *CatalogView) SetSearchQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.query = query
	v.currentPage = 1
	v.recompute()
}

// SetCategory filters by category, "" meaning no category filter.
func (v *CatalogView) SetCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.selectedCategory = category
	v.currentPage = 1
	v.recompute()
}

// SetPriceRange sets both bounds at once, nil leaving that side open.
func (v *CatalogView) SetPriceRange(min, max *float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.minPrice = min
	v.maxPrice = max
	v.currentPage = 1
	v.recompute()
}

// SetSort changes the sort key and direction, keeping the current page.
func (v *CatalogView) SetSort(key SortKey, direction SortDirection) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sortBy = key
	v.sortOrder = direction
	v.recompute()
}

// SetPage requests a page. Out-of-range requests are clamped into
// [1, totalPages] by the recompute rather than rejected.
func (v *CatalogView) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.currentPage = page
	v.recompute()
}

func (v *CatalogView) SetPageSize(size int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if size < 1 {
		size = 1
	}
	v.pageSize = size
	v.currentPage = 1
	v.recompute()
}

// ApplyParams installs one full set of view parameters and returns the
// derived page plus the category list from that same recompute. The lock is
// held across the whole sequence so concurrent callers can never read a view
// computed under another caller's filters.
func (v *CatalogView) ApplyParams(params ViewParams) (DerivedView, []string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.query = params.Query
	v.selectedCategory = params.Category
	v.minPrice = params.MinPrice
	v.maxPrice = params.MaxPrice
	v.sortBy = params.SortBy
	v.sortOrder = params.SortOrder
	if params.PageSize > 0 {
		v.pageSize = params.PageSize
	}
	v.currentPage = params.Page
	v.recompute()

	snapshot := v.view
	snapshot.Products = make([]Product, len(v.view.Products))
	copy(snapshot.Products, v.view.Products)

	categories := make([]string, len(v.categories))
	copy(categories, v.categories)

	return snapshot, categories
}

// ClearFilters resets query, category and price bounds, keeping the sort.
func (v *CatalogView) ClearFilters() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.query = ""
	v.selectedCategory = ""
	v.minPrice = nil
	v.maxPrice = nil
	v.currentPage = 1
	v.recompute()
}

// ReplaceCollection swaps the authoritative product list, re-derives the
// category list and recomputes the view against the active filters.
func (v *CatalogView) ReplaceCollection(newAllProducts []Product) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.allProducts = make([]Product, len(newAllProducts))
	copy(v.allProducts, newAllProducts)
	v.refreshCategories()
	v.recompute()
}

// InsertProduct appends a newly created product to the collection.
func (v *CatalogView) InsertProduct(p Product) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.allProducts = append(v.allProducts, p)
	v.refreshCategories()
	v.recompute()
}

// UpdateProduct replaces the matching product in place. Unknown ids are
// ignored, the backend response is authoritative either way.
func (v *CatalogView) UpdateProduct(p Product) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.allProducts {
		if v.allProducts[i].ID == p.ID {
			v.allProducts[i] = p
			break
		}
	}
	v.refreshCategories()
	v.recompute()
}

// RemoveProduct drops the product with the given id from the collection.
func (v *CatalogView) RemoveProduct(id int32) {
	v.mu.Lock()
	defer v.mu.Unlock()

	kept := v.allProducts[:0]
	for _, p := range v.allProducts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	v.allProducts = kept
	v.refreshCategories()
	v.recompute()
}

// Lookup finds a product in the full collection by id.
func (v *CatalogView) Lookup(id int32) (Product, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, p := range v.allProducts {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// View returns a snapshot of the current derived view.
func (v *CatalogView) View() DerivedView {
	v.mu.Lock()
	defer v.mu.Unlock()

	snapshot := v.view
	snapshot.Products = make([]Product, len(v.view.Products))
	copy(snapshot.Products, v.view.Products)

	return snapshot
}

// Categories returns the distinct non-empty category values across the full
// collection, in first-seen order.
func (v *CatalogView) Categories() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	res := make([]string, len(v.categories))
	copy(res, v.categories)

	return res
}

func (v *CatalogView) Params() ViewParams {
	v.mu.Lock()
	defer v.mu.Unlock()

	return ViewParams{
		Query:     v.query,
		Category:  v.selectedCategory,
		MinPrice:  v.minPrice,
		MaxPrice:  v.maxPrice,
		SortBy:    v.sortBy,
		SortOrder: v.sortOrder,
		Page:      v.currentPage,
		PageSize:  v.pageSize,
	}
}

func (v *CatalogView) refreshCategories() {
	seen := make(map[string]bool, len(v.allProducts))
	categories := []string{}
	for _, p := range v.allProducts {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	v.categories = categories
}

// recompute runs the fixed filter -> sort -> paginate pipeline and replaces
// the derived view atomically. Caller must hold the lock.
func (v *CatalogView) recompute() {
	filtered := filterProducts(v.allProducts, v.query, v.selectedCategory, v.minPrice, v.maxPrice)
	sorted := sortProducts(filtered, v.sortBy, v.sortOrder, v.collator)

	totalItems := len(sorted)
	totalPages := int(math.Ceil(float64(totalItems) / float64(v.pageSize)))
	// zero matching items still count as one empty page, so the boundary
	// flags stay consistent with currentPage
	if totalPages < 1 {
		totalPages = 1
	}

	if v.currentPage > totalPages {
		v.currentPage = totalPages
	}
	if v.currentPage < 1 {
		v.currentPage = 1
	}

	start := (v.currentPage - 1) * v.pageSize
	end := start + v.pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	v.view = DerivedView{
		Products:    sorted[start:end],
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: v.currentPage,
		PageSize:    v.pageSize,
		HasNextPage: v.currentPage < totalPages,
		HasPrevPage: v.currentPage > 1,
	}
}

func filterProducts(products []Product, query, category string, minPrice, maxPrice *float64) []Product {
	loweredQuery := strings.ToLower(query)

	res := make([]Product, 0, len(products))
	for _, p := range products {
		matchesSearch := loweredQuery == "" ||
			strings.Contains(strings.ToLower(p.Name), loweredQuery) ||
			strings.Contains(strings.ToLower(p.Description), loweredQuery)

		matchesCategory := category == "" || strings.EqualFold(p.Category, category)

		matchesMinPrice := minPrice == nil || p.Price >= *minPrice
		matchesMaxPrice := maxPrice == nil || p.Price <= *maxPrice

		if matchesSearch && matchesCategory && matchesMinPrice && matchesMaxPrice {
			res = append(res, p)
		}
	}

	return res
}

func sortProducts(products []Product, sortBy SortKey, sortOrder SortDirection, collator *collate.Collator) []Product {
	res := make([]Product, len(products))
	copy(res, products)

	sort.SliceStable(res, func(i, j int) bool {
		var comparison int
		switch sortBy {
		case SortByPrice:
			switch {
			case res[i].Price < res[j].Price:
				comparison = -1
			case res[i].Price > res[j].Price:
				comparison = 1
			}
		case SortByCreated:
			// higher id means more recent
			comparison = int(res[i].ID - res[j].ID)
		default:
			comparison = collator.CompareString(res[i].Name, res[j].Name)
		}

		if sortOrder == SortDesc {
			return comparison > 0
		}
		return comparison < 0
	})

	return res
}
