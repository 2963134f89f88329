package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"cafemart/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CustomerRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    CustomerRepository
	context context.Context
}

func (suite *CustomerRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewCustomerRepo(mock)
	suite.context = context.Background()
}

func (suite *CustomerRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestCustomerRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepoTestSuite))
}

func (suite *CustomerRepoTestSuite) TestCreate_Success() {
	customer := &models.Customer{
		ID:            uuid.New(),
		Name:          "Ada Lovelace",
		ContactNumber: "555-0101",
		Address:       "12 Analytical Way",
	}

	suite.mock.ExpectExec(`INSERT INTO customers \(id, name, contact_number, address, created_at\)`).
		WithArgs(customer.ID, customer.Name, customer.ContactNumber, customer.Address).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, customer)
	assert.NoError(suite.T(), err)
}

func (suite *CustomerRepoTestSuite) TestCreate_DatabaseError() {
	customer := &models.Customer{
		ID:            uuid.New(),
		Name:          "Grace Hopper",
		ContactNumber: "555-0102",
		Address:       "1 Compiler Court",
	}

	suite.mock.ExpectExec(`INSERT INTO customers`).
		WithArgs(customer.ID, customer.Name, customer.ContactNumber, customer.Address).
		WillReturnError(errors.New("database connection failed"))

	err := suite.repo.Create(suite.context, customer)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "database connection failed")
}

func (suite *CustomerRepoTestSuite) TestGetByContact_Success() {
	customerID := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "name", "contact_number", "address", "created_at"}).
		AddRow(customerID, "Ada Lovelace", "555-0101", "12 Analytical Way", time.Now())

	suite.mock.ExpectQuery(`SELECT id, name, contact_number, address, created_at FROM customers WHERE contact_number = \$1 ORDER BY created_at DESC LIMIT 1`).
		WithArgs("555-0101").
		WillReturnRows(rows)

	result, err := suite.repo.GetByContact(suite.context, "555-0101")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), customerID, result.ID)
	assert.Equal(suite.T(), "555-0101", result.ContactNumber)
}

func (suite *CustomerRepoTestSuite) TestGetByContact_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, name, contact_number, address, created_at FROM customers WHERE contact_number = \$1`).
		WithArgs("555-9999").
		WillReturnError(pgx.ErrNoRows)

	result, err := suite.repo.GetByContact(suite.context, "555-9999")
	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
	assert.Nil(suite.T(), result)
}

func (suite *CustomerRepoTestSuite) TestGetByID_Success() {
	customerID := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "name", "contact_number", "address", "created_at"}).
		AddRow(customerID, "Grace Hopper", "555-0102", "1 Compiler Court", time.Now())

	suite.mock.ExpectQuery(`SELECT id, name, contact_number, address, created_at FROM customers WHERE id = \$1`).
		WithArgs(customerID).
		WillReturnRows(rows)

	result, err := suite.repo.GetByID(suite.context, customerID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Grace Hopper", result.Name)
}
