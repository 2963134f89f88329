package repositories

import (
	"context"

	"cafemart/internal/models"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetByContact(ctx context.Context, contactNumber string) (*models.Customer, error)
}

type customerRepo struct {
	db Database
}

func NewCustomerRepo(db Database) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, name, contact_number, address, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, customer.ID, customer.Name, customer.ContactNumber, customer.Address)
	return err
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer := &models.Customer{}
	query := `
		SELECT id, name, contact_number, address, created_at
		FROM customers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&customer.ID, &customer.Name, &customer.ContactNumber, &customer.Address, &customer.CreatedAt)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByContact finds the most recent customer row for a contact number.
// Contact numbers are not unique across rows, so the newest row wins.
func (r *customerRepo) GetByContact(ctx context.Context, contactNumber string) (*models.Customer, error) {
	customer := &models.Customer{}
	query := `
		SELECT id, name, contact_number, address, created_at
		FROM customers
		WHERE contact_number = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query, contactNumber).Scan(&customer.ID, &customer.Name, &customer.ContactNumber, &customer.Address, &customer.CreatedAt)
	if err != nil {
		return nil, err
	}
	return customer, nil
}
