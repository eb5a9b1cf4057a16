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

// StockDepletionPostgresRepository implementa StockDepletionRepository usando PostgreSQL.
// La unicidad por producto la garantiza el UNIQUE de stock_depletions.product_id.
type StockDepletionPostgresRepository struct {
	db *sql.DB
}

// NewStockDepletionPostgresRepository crea una nueva instancia del repositorio
func NewStockDepletionPostgresRepository(db *sql.DB) port.StockDepletionRepository {
	return &StockDepletionPostgresRepository{db: db}
}

// CreateIfAbsent inserta con ON CONFLICT DO NOTHING; sin fila devuelta ya existía
func (r *StockDepletionPostgresRepository) CreateIfAbsent(ctx context.Context, depletion *entity.StockDepletion) (bool, error) {
	query := `
		INSERT INTO stock_depletions (
			product_id, period_start, depleted_at,
			initial_quantity, quantity_sold, lifetime_days
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (product_id) DO NOTHING
		RETURNING id
	`

	err := database.Conn(ctx, r.db).QueryRowContext(ctx, query,
		depletion.ProductID,
		depletion.PeriodStart,
		depletion.DepletedAt,
		depletion.InitialQuantity,
		depletion.QuantitySold,
		depletion.LifetimeDays,
	).Scan(&depletion.ID)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return false, &entity.ProductNotFoundError{ProductID: depletion.ProductID}
		}
		return false, fmt.Errorf("error creating stock_depletion: %w", err)
	}

	return true, nil
}

const selectDepletion = `
	SELECT id, product_id, period_start, depleted_at,
	       initial_quantity, quantity_sold, lifetime_days
	FROM stock_depletions
`

// FindByProductID devuelve nil si el producto no tiene registro
func (r *StockDepletionPostgresRepository) FindByProductID(ctx context.Context, productID int64) (*entity.StockDepletion, error) {
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, selectDepletion+" WHERE product_id = $1", productID)

	depletion, err := scanDepletion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding stock_depletion: %w", err)
	}
	return depletion, nil
}

// List devuelve los registros ordenados por fecha de agotamiento descendente
func (r *StockDepletionPostgresRepository) List(ctx context.Context) ([]*entity.StockDepletion, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, selectDepletion+" ORDER BY depleted_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("error querying stock_depletions: %w", err)
	}
	defer rows.Close()

	var depletions []*entity.StockDepletion
	for rows.Next() {
		depletion, err := scanDepletion(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning stock_depletion: %w", err)
		}
		depletions = append(depletions, depletion)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock_depletions: %w", err)
	}

	return depletions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDepletion(s scanner) (*entity.StockDepletion, error) {
	var (
		d            entity.StockDepletion
		periodStart  sql.NullTime
		lifetimeDays sql.NullInt64
	)
	err := s.Scan(
		&d.ID,
		&d.ProductID,
		&periodStart,
		&d.DepletedAt,
		&d.InitialQuantity,
		&d.QuantitySold,
		&lifetimeDays,
	)
	if err != nil {
		return nil, err
	}

	if periodStart.Valid {
		d.PeriodStart = &periodStart.Time
	}
	if lifetimeDays.Valid {
		days := int(lifetimeDays.Int64)
		d.LifetimeDays = &days
	}
	return &d, nil
}
