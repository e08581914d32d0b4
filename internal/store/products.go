package store

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/wingseng/parts-catalog/internal/models"
)

// Catalog is the read-side data access for products. The public site only
// ever sees active rows; writes happen through the admin surface.
type Catalog struct {
	DB *gorm.DB
}

func NewCatalog(conn *gorm.DB) *Catalog { return &Catalog{DB: conn} }

// FetchOptions narrow a catalog fetch. Zero values disable each predicate.
type FetchOptions struct {
	Category    string // "" or "all" disables
	Brand       string
	Search      string
	InStockOnly bool
	Limit       int
}

const defaultFetchLimit = 50

var unsafeSearchChars = regexp.MustCompile(`[^a-zA-Z0-9 \-_.]`)

// Fetch returns active products, newest first, narrowed by opts. A store
// error is returned as-is so callers can distinguish "could not search" from
// "no matches".
func (s *Catalog) Fetch(opts FetchOptions) ([]models.Product, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = defaultFetchLimit
	}
	q := s.DB.Where("status = ?", models.ProductStatusActive)
	if opts.Category != "" && opts.Category != "all" {
		q = q.Where("category = ?", opts.Category)
	}
	if opts.Brand != "" && opts.Brand != "all" {
		q = q.Where("brand = ?", opts.Brand)
	}
	if opts.InStockOnly {
		q = q.Where("stock_quantity > 0")
	}
	if term := strings.TrimSpace(opts.Search); term != "" {
		safe := unsafeSearchChars.ReplaceAllString(term, "")
		like := "%" + strings.ToLower(safe) + "%"
		q = q.Where("lower(name) LIKE ? OR lower(part_number) LIKE ? OR lower(short_description) LIKE ? OR lower(brand) LIKE ?", like, like, like, like)
	}
	var products []models.Product
	if err := q.Order("created_at desc").Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

// ByID loads one active product.
func (s *Catalog) ByID(id string) (*models.Product, error) {
	var p models.Product
	err := s.DB.Where("id = ? AND status = ?", id, models.ProductStatusActive).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Categories lists the distinct categories of active products.
func (s *Catalog) Categories() ([]string, error) {
	var out []string
	err := s.DB.Model(&models.Product{}).
		Where("status = ?", models.ProductStatusActive).
		Distinct("category").Order("category asc").Pluck("category", &out).Error
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return out, nil
}

// Brands lists the distinct brands of active products.
func (s *Catalog) Brands() ([]string, error) {
	var out []string
	err := s.DB.Model(&models.Product{}).
		Where("status = ?", models.ProductStatusActive).
		Distinct("brand").Order("brand asc").Pluck("brand", &out).Error
	if err != nil {
		return nil, fmt.Errorf("fetch brands: %w", err)
	}
	return out, nil
}
