package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eshopx/microservices/pkg/logging"
	"github.com/eshopx/microservices/services/catalog/internal/models"
	"github.com/eshopx/microservices/services/catalog/internal/repo"
	"github.com/eshopx/microservices/services/catalog/internal/search"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type CatalogService struct {
	Repo   repo.ProductRepository
	Search search.Indexer
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	return product, err
}

func (s *CatalogService) GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.GetProducts(ctx, offset, limit)
}

func (s *CatalogService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	if category == "" {
		return nil, fmt.Errorf("category must not be empty: %w", ErrValidation)
	}
	return s.Repo.GetProductsByCategory(ctx, category)
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if query == "" {
		return 0, nil, fmt.Errorf("query must not be empty: %w", ErrValidation)
	}
	return s.Search.SearchProducts(ctx, query, from, size)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("name must not be empty: %w", ErrValidation)
	}
	if product.Price < 0 {
		return fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return err
	}
	s.indexProduct(ctx, product)
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		return fmt.Errorf("id required: %w", ErrValidation)
	}
	if product.Name == "" {
		return fmt.Errorf("name must not be empty: %w", ErrValidation)
	}
	if product.Price < 0 {
		return fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}

	err := s.Repo.UpdateProduct(ctx, product)
	if errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("product %q: %w", product.ID, ErrNotFound)
	}
	if err != nil {
		return err
	}
	s.indexProduct(ctx, product)
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) (bool, error) {
	existed, err := s.Repo.DeleteProduct(ctx, id)
	if err != nil {
		return false, err
	}
	if existed {
		if err := s.Search.RemoveProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search index removal failed", "product_id", id, "error", err)
		}
	}
	return existed, nil
}

// indexProduct keeps the search index best-effort: the catalog stays
// authoritative and an indexing failure never fails the write.
func (s *CatalogService) indexProduct(ctx context.Context, product *models.Product) {
	if err := s.Search.IndexProduct(ctx, product); err != nil {
		logging.FromContext(ctx).Warn("search indexing failed", "product_id", product.ID, "error", err)
	}
}
