package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gandallf070/trebol/src/sales/domain/entity"
	"github.com/gandallf070/trebol/src/sales/domain/port"
	"github.com/gandallf070/trebol/src/shared/infrastructure/database"
)

// CustomerPostgresRepository implementa CustomerRepository usando PostgreSQL
type CustomerPostgresRepository struct {
	db *sql.DB
}

// NewCustomerPostgresRepository crea una nueva instancia del repositorio
func NewCustomerPostgresRepository(db *sql.DB) port.CustomerRepository {
	return &CustomerPostgresRepository{db: db}
}

func (r *CustomerPostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `
		SELECT id, national_id, first_name, last_name, phone, created_at
		FROM customers
		WHERE id = $1
	`

	customer := &entity.Customer{}
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.NationalID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Phone,
		&customer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding customer %d: %w", id, err)
	}

	return customer, nil
}
