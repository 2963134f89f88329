package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cafemart/internal/common"
	"cafemart/internal/models"
	"cafemart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	// ErrValidation marks precondition failures. No database work has
	// happened when it is returned.
	ErrValidation = errors.New("invalid order request")
	// ErrTimeout marks an order whose transaction hit the request deadline.
	// The transaction is rolled back before it is returned.
	ErrTimeout = errors.New("order processing timed out")
)

// OrderServiceInterface defines the order placement and readback operations.
type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.OrderConfirmation, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, []*models.OrderItem, error)
}

type orderService struct {
	db      repositories.TxBeginner
	timeout time.Duration
}

// NewOrderService creates the order coordinator over a connection pool. Each
// PlaceOrder call opens its own transaction and terminates it on every exit
// path; timeout bounds the whole transactional sequence.
func NewOrderService(db repositories.TxBeginner, timeout time.Duration) OrderServiceInterface {
	return &orderService{db: db, timeout: timeout}
}

// PlaceOrder writes one customer, one order and one order item per resolvable
// cart line inside a single transaction. Unit prices come from the products
// table at insert time, never from the client. Cart lines whose name matches
// no product are skipped and reported back, not failed.
func (s *orderService) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.OrderConfirmation, error) {
	if err := validatePlaceOrder(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, s.classify(ctx, fmt.Errorf("begin order transaction: %w", err))
	}
	defer tx.Rollback(ctx)

	customer, err := s.resolveCustomer(ctx, repositories.NewCustomerRepo(tx), req)
	if err != nil {
		return nil, s.classify(ctx, fmt.Errorf("resolve customer: %w", err))
	}

	order := &models.Order{
		ID:          uuid.New(),
		CustomerID:  customer.ID,
		TotalAmount: *req.TotalAmount,
		Status:      models.OrderStatusPending,
	}
	if err := repositories.NewOrderRepo(tx).Create(ctx, order); err != nil {
		return nil, s.classify(ctx, fmt.Errorf("create order: %w", err))
	}

	productRepo := repositories.NewProductRepo(tx)
	orderItemRepo := repositories.NewOrderItemRepo(tx)

	skipped := []string{}
	computedTotal := 0.0
	for _, line := range req.CartItems {
		product, err := productRepo.GetByName(ctx, line.Name)
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("WARN: order %s: no product named %q, cart line skipped", order.ID, line.Name)
			skipped = append(skipped, line.Name)
			continue
		}
		if err != nil {
			return nil, s.classify(ctx, fmt.Errorf("resolve product %q: %w", line.Name, err))
		}

		item := &models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		}
		if err := orderItemRepo.Create(ctx, item); err != nil {
			return nil, s.classify(ctx, fmt.Errorf("create order item %q: %w", line.Name, err))
		}
		computedTotal += product.Price * float64(line.Quantity)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, s.classify(ctx, fmt.Errorf("commit order transaction: %w", err))
	}

	return &models.OrderConfirmation{
		OrderID:       order.ID,
		SkippedItems:  skipped,
		ComputedTotal: computedTotal,
	}, nil
}

// resolveCustomer finds an existing customer by contact number or creates a
// new row inside the caller's transaction.
func (s *orderService) resolveCustomer(ctx context.Context, customers repositories.CustomerRepository, req *models.PlaceOrderRequest) (*models.Customer, error) {
	customer, err := customers.GetByContact(ctx, req.CustomerContact)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	customer = &models.Customer{
		ID:            uuid.New(),
		Name:          req.CustomerName,
		ContactNumber: req.CustomerContact,
		Address:       req.CustomerAddress,
	}
	if err := customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetOrder returns an order with its items, or pgx.ErrNoRows when absent.
func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, []*models.OrderItem, error) {
	order, err := repositories.NewOrderRepo(s.db).GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	items, err := repositories.NewOrderItemRepo(s.db).ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// classify maps a mid-transaction failure to ErrTimeout when the request
// deadline was the cause.
func (s *orderService) classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

func validatePlaceOrder(req *models.PlaceOrderRequest) error {
	if err := common.ValidateRequiredString(req.CustomerName, "customerName"); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := common.ValidateRequiredString(req.CustomerContact, "customerContact"); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := common.ValidateRequiredString(req.CustomerAddress, "customerAddress"); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(req.CartItems) == 0 {
		return fmt.Errorf("%w: cartItems must not be empty", ErrValidation)
	}
	if req.TotalAmount == nil {
		return fmt.Errorf("%w: totalAmount is required", ErrValidation)
	}
	return nil
}
