package services

import (
	"context"
	"log"
	"time"

	"cafemart/internal/caching"
	"cafemart/internal/models"
	"cafemart/internal/repositories"
)

const productListTTL = 5 * time.Minute

// CatalogService is the read-only product accessor backing client display.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	RefreshProductList(ctx context.Context) error
}

type catalogService struct {
	productRepo  repositories.ProductRepository
	cacheService caching.CacheService
}

func NewCatalogService(productRepo repositories.ProductRepository, cacheService caching.CacheService) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		cacheService: cacheService,
	}
}

// ListProducts returns the full catalog, cache first. Cache errors degrade to
// the database rather than failing the request.
func (s *catalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	if cached, err := s.cacheService.GetProductList(ctx); err != nil {
		log.Printf("WARN: product list cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.SetProductList(ctx, products, productListTTL); cacheErr != nil {
		log.Printf("WARN: failed to cache product list: %v", cacheErr)
	}

	return products, nil
}

// RefreshProductList re-primes the cache from the database. Run by the
// background scheduler.
func (s *catalogService) RefreshProductList(ctx context.Context) error {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return err
	}
	return s.cacheService.SetProductList(ctx, products, productListTTL)
}
