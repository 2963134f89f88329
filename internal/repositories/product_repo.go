package repositories

import (
	"context"

	"cafemart/internal/models"

	"github.com/google/uuid"
)

type ProductRepository interface {
	List(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
}

type productRepo struct {
	db Database
}

func NewProductRepo(db Database) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) List(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT id, name, description, price, category, created_at
		FROM products
		ORDER BY category, name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Category, &product.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, name, description, price, category, created_at
		FROM products
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Category, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetByName resolves a product by exact name match. Names are not guaranteed
// unique; the first row wins.
func (r *productRepo) GetByName(ctx context.Context, name string) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, name, description, price, category, created_at
		FROM products
		WHERE name = $1
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Category, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}
