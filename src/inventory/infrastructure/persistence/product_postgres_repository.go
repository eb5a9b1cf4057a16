package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gandallf070/trebol/src/inventory/domain/entity"
	"github.com/gandallf070/trebol/src/inventory/domain/port"
	"github.com/gandallf070/trebol/src/shared/infrastructure/database"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{db: db}
}

const selectProduct = `
	SELECT id, category_id, name, price, available_quantity, active, created_at, updated_at
	FROM products
	WHERE id = $1
`

// FindByID lectura de display
func (r *ProductPostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.find(ctx, selectProduct, id)
}

// FindByIDForUpdate bloquea la fila (SELECT ... FOR UPDATE) dentro de la transacción del contexto
func (r *ProductPostgresRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	if _, ok := database.TxFromContext(ctx); !ok {
		return nil, fmt.Errorf("locking product %d requires a transaction", id)
	}
	return r.find(ctx, selectProduct+" FOR UPDATE", id)
}

func (r *ProductPostgresRepository) find(ctx context.Context, query string, id int64) (*entity.Product, error) {
	product := &entity.Product{}
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.CategoryID,
		&product.Name,
		&product.Price,
		&product.AvailableQuantity,
		&product.Active,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, &entity.ProductNotFoundError{ProductID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product %d: %w", id, err)
	}

	return product, nil
}

// UpdateStock persiste cantidad y estado
func (r *ProductPostgresRepository) UpdateStock(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET available_quantity = $1,
		    active = $2,
		    updated_at = $3
		WHERE id = $4
	`

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		product.AvailableQuantity,
		product.Active,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating stock for product %d: %w", product.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rows == 0 {
		return &entity.ProductNotFoundError{ProductID: product.ID}
	}

	return nil
}
