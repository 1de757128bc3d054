package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Lixing-Zhang/grocify/internal/models"
	"github.com/Lixing-Zhang/grocify/internal/shopping"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

// CatalogRepository defines the interface for catalog data access
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (shopping.Catalog, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, category shopping.Category) (*models.Category, error)
	FindProduct(ctx context.Context, name string) (string, error)
}

// InMemoryCatalogRepository implements CatalogRepository over the static product table
type InMemoryCatalogRepository struct {
	catalog shopping.Catalog
	// products indexes every product name by its lower-cased form
	products map[string]string
}

// NewInMemoryCatalogRepository creates a repository seeded with the default catalog
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return NewInMemoryCatalogRepositoryFrom(shopping.DefaultCatalog())
}

// NewInMemoryCatalogRepositoryFrom creates a repository over the given catalog
func NewInMemoryCatalogRepositoryFrom(catalog shopping.Catalog) *InMemoryCatalogRepository {
	products := make(map[string]string)
	for _, names := range catalog {
		for _, name := range names {
			products[strings.ToLower(name)] = name
		}
	}

	return &InMemoryCatalogRepository{
		catalog:  catalog,
		products: products,
	}
}

// GetCatalog returns a copy of the whole category->products table
func (r *InMemoryCatalogRepository) GetCatalog(ctx context.Context) (shopping.Catalog, error) {
	catalog := make(shopping.Catalog, len(r.catalog))
	for category := range r.catalog {
		catalog[category] = r.catalog.Products(category)
	}
	return catalog, nil
}

// ListCategories returns every category in display order
func (r *InMemoryCatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(r.catalog))
	for _, c := range shopping.Categories() {
		if _, ok := r.catalog[c]; !ok {
			continue
		}
		categories = append(categories, models.Category{
			Name:     c.String(),
			Products: r.catalog.Products(c),
		})
	}
	return categories, nil
}

// GetCategory returns a single category with its products
func (r *InMemoryCatalogRepository) GetCategory(ctx context.Context, category shopping.Category) (*models.Category, error) {
	if _, ok := r.catalog[category]; !ok {
		return nil, ErrCategoryNotFound
	}
	return &models.Category{
		Name:     category.String(),
		Products: r.catalog.Products(category),
	}, nil
}

// FindProduct resolves a product name case-insensitively to its catalog spelling
func (r *InMemoryCatalogRepository) FindProduct(ctx context.Context, name string) (string, error) {
	product, exists := r.products[strings.ToLower(strings.TrimSpace(name))]
	if !exists {
		return "", ErrProductNotFound
	}
	return product, nil
}
