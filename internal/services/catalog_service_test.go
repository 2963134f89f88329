package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cafemart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetProductList(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockCacheService) SetProductList(ctx context.Context, products []*models.Product, ttl time.Duration) error {
	args := m.Called(ctx, products, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateProductList(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func sampleProducts() []*models.Product {
	return []*models.Product{
		{ID: uuid.New(), Name: "Espresso", Price: 2.50, Category: "coffee"},
		{ID: uuid.New(), Name: "Latte", Price: 4.25, Category: "coffee"},
	}
}

func TestListProducts_CacheHit(t *testing.T) {
	repo := new(MockProductRepository)
	cache := new(MockCacheService)
	products := sampleProducts()

	cache.On("GetProductList", mock.Anything).Return(products, nil)

	svc := NewCatalogService(repo, cache)
	result, err := svc.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, products, result)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestListProducts_CacheMissFallsThrough(t *testing.T) {
	repo := new(MockProductRepository)
	cache := new(MockCacheService)
	products := sampleProducts()

	cache.On("GetProductList", mock.Anything).Return(nil, nil)
	repo.On("List", mock.Anything).Return(products, nil)
	cache.On("SetProductList", mock.Anything, products, mock.Anything).Return(nil)

	svc := NewCatalogService(repo, cache)
	result, err := svc.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, products, result)
	cache.AssertExpectations(t)
}

func TestListProducts_CacheErrorDegradesToDatabase(t *testing.T) {
	repo := new(MockProductRepository)
	cache := new(MockCacheService)
	products := sampleProducts()

	cache.On("GetProductList", mock.Anything).Return(nil, errors.New("redis unavailable"))
	repo.On("List", mock.Anything).Return(products, nil)
	cache.On("SetProductList", mock.Anything, products, mock.Anything).Return(errors.New("redis unavailable"))

	svc := NewCatalogService(repo, cache)
	result, err := svc.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, products, result)
}

func TestListProducts_DatabaseError(t *testing.T) {
	repo := new(MockProductRepository)
	cache := new(MockCacheService)

	cache.On("GetProductList", mock.Anything).Return(nil, nil)
	repo.On("List", mock.Anything).Return(nil, errors.New("database connection failed"))

	svc := NewCatalogService(repo, cache)
	result, err := svc.ListProducts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRefreshProductList(t *testing.T) {
	repo := new(MockProductRepository)
	cache := new(MockCacheService)
	products := sampleProducts()

	repo.On("List", mock.Anything).Return(products, nil)
	cache.On("SetProductList", mock.Anything, products, mock.Anything).Return(nil)

	svc := NewCatalogService(repo, cache)
	assert.NoError(t, svc.RefreshProductList(context.Background()))
	cache.AssertExpectations(t)
}

func TestRefreshProductList_DatabaseError(t *testing.T) {
	repo := new(MockProductRepository)
	cache := new(MockCacheService)

	repo.On("List", mock.Anything).Return(nil, errors.New("database connection failed"))

	svc := NewCatalogService(repo, cache)
	assert.Error(t, svc.RefreshProductList(context.Background()))
	cache.AssertNotCalled(t, "SetProductList", mock.Anything, mock.Anything, mock.Anything)
}
