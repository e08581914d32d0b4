package catalog

import (
	"sort"
	"strings"

	"github.com/wingseng/parts-catalog/internal/models"
)

// Sort keys accepted by the catalog view.
type Sort string

const (
	SortRelevance Sort = "relevance"
	SortPriceAsc  Sort = "priceAsc"
	SortPriceDesc Sort = "priceDesc"
	SortName      Sort = "name"
	SortNewest    Sort = "newest"
)

// Stock filter states.
type StockFilter string

const (
	StockAll           StockFilter = "all"
	StockInStock       StockFilter = "inStock"
	StockAvailableSoon StockFilter = "availableSoon"
)

// Parts with no stock but a short restock lead time are shown as
// "available soon" rather than out of stock.
const availableSoonMaxLeadDays = 10

// Criteria is the full tuple of user-selected filters for one catalog view.
// The zero value means: no search, all categories/brands, any stock,
// relevance order, first page with DefaultPageSize.
type Criteria struct {
	Search   string
	Category string // "" or "all" disables the filter
	Brand    string
	Stock    StockFilter
	Sort     Sort
	Page     int
	PageSize int
}

const DefaultPageSize = 8

// ResetPage returns next with the page forced back to 1 whenever any
// criterion other than the page itself differs from prev.
func ResetPage(prev, next Criteria) Criteria {
	a, b := prev, next
	a.Page, b.Page = 0, 0
	if a != b {
		next.Page = 1
	}
	return next
}

// Apply filters and orders candidates according to c, without paginating.
// The result is always a subset of candidates; it never errors, an
// unmatched combination simply yields an empty slice.
func Apply(candidates []models.Product, c Criteria) []models.Product {
	term := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]models.Product, 0, len(candidates))
	for _, p := range candidates {
		if !categoryMatches(p, c.Category) || !brandMatches(p, c.Brand) {
			continue
		}
		if !stockMatches(p, c.Stock) {
			continue
		}
		if term != "" && !searchMatches(p, term) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, c.Sort, term)
	return out
}

func categoryMatches(p models.Product, category string) bool {
	return category == "" || category == "all" || p.Category == category
}

func brandMatches(p models.Product, brand string) bool {
	return brand == "" || brand == "all" || p.Brand == brand
}

func stockMatches(p models.Product, f StockFilter) bool {
	switch f {
	case StockInStock:
		return p.StockQuantity > 0
	case StockAvailableSoon:
		return p.StockQuantity == 0 && p.LeadTimeDays != nil && *p.LeadTimeDays <= availableSoonMaxLeadDays
	default:
		return true
	}
}

// searchMatches reports whether any of name, part number, model, brand or a
// compatible-engine entry contains term. term must already be lowercased and
// non-empty.
func searchMatches(p models.Product, term string) bool {
	for _, field := range []string{p.Name, p.PartNumber, p.Model, p.Brand} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	for _, engine := range p.CompatibleEngines {
		if strings.Contains(strings.ToLower(engine), term) {
			return true
		}
	}
	return false
}

// relevance counts how many of name, model and part number contain term.
func relevance(p models.Product, term string) int {
	score := 0
	for _, field := range []string{p.Name, p.Model, p.PartNumber} {
		if strings.Contains(strings.ToLower(field), term) {
			score++
		}
	}
	return score
}

func priceOrZero(p models.Product) float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// sortProducts orders items in place. All sorts are stable so ties keep
// their prior relative order. Relevance only applies when a term is present;
// without one the fetch order (newest first) is kept as-is.
func sortProducts(items []models.Product, s Sort, term string) {
	switch s {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return priceOrZero(items[i]) < priceOrZero(items[j]) })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return priceOrZero(items[i]) > priceOrZero(items[j]) })
	case SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	default: // SortRelevance
		if term == "" {
			return
		}
		sort.SliceStable(items, func(i, j int) bool { return relevance(items[i], term) > relevance(items[j], term) })
	}
}

// Paginate slices items into the requested page. Pages are 1-based; out of
// range pages are clamped rather than erroring. Returns the slice, the
// effective page and the total page count.
func Paginate(items []models.Product, page, size int) ([]models.Product, int, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	totalPages := (len(items) + size - 1) / size
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []models.Product{}, page, totalPages
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}
