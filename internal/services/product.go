package service

import (
	"context"

	"github.com/shophub/storefront/internal/errors"
	"github.com/shophub/storefront/internal/models"
	repository "github.com/shophub/storefront/internal/repositories"
)

type ProductService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type productService struct {
	catalog *repository.CatalogRepository
}

func NewProductService(catalog *repository.CatalogRepository) ProductService {
	return &productService{catalog: catalog}
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.catalog.ListProducts(filter), nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {

	product := s.catalog.GetProductByID(id)
	if product == nil {
		return nil, errors.NotFoundError("Product not found")
	}

	return product, nil
}

func (s *productService) ListCategories(ctx context.Context) ([]string, error) {
	return s.catalog.ListCategories(), nil
}
