package repository

import (
	"strings"

	"github.com/shophub/storefront/internal/models"
)

// CatalogRepository serves the hardcoded product seed. The catalog is
// read-only for the lifetime of the process, so lookups need no locking.
type CatalogRepository struct {
	products []models.Product
	byID     map[string]*models.Product
}

func NewCatalogRepository() *CatalogRepository {
	return NewCatalogRepositoryFrom(seedProducts())
}

// NewCatalogRepositoryFrom builds a catalog from an explicit product list.
// The slice is copied; later mutation of the argument has no effect.
func NewCatalogRepositoryFrom(products []models.Product) *CatalogRepository {

	owned := make([]models.Product, len(products))
	copy(owned, products)

	byID := make(map[string]*models.Product, len(owned))
	for i := range owned {
		byID[owned[i].ID] = &owned[i]
	}

	return &CatalogRepository{products: owned, byID: byID}
}

// ListProducts returns products matching the filter, in seed order.
func (r *CatalogRepository) ListProducts(filter models.ProductFilter) []models.Product {

	result := make([]models.Product, 0, len(r.products))

	for _, p := range r.products {

		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}

		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
		}

		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}

		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}

		result = append(result, p)
	}

	return result
}

// GetProductByID returns the product, or nil if the id is unknown.
func (r *CatalogRepository) GetProductByID(id string) *models.Product {

	if p, ok := r.byID[id]; ok {
		product := *p

		return &product
	}

	return nil
}

// ListCategories returns distinct category names in first-seen order.
func (r *CatalogRepository) ListCategories() []string {

	seen := make(map[string]bool)

	var categories []string

	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	return categories
}
