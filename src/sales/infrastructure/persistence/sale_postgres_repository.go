package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gandallf070/trebol/src/sales/domain/entity"
	"github.com/gandallf070/trebol/src/sales/domain/port"
	sharedPort "github.com/gandallf070/trebol/src/shared/domain/port"
	"github.com/gandallf070/trebol/src/shared/infrastructure/database"
)

// Nombres por defecto que Postgres asigna a las FKs de sales
const (
	fkSalesCustomer = "sales_customer_id_fkey"
	fkSalesSeller   = "sales_seller_id_fkey"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
type SalePostgresRepository struct {
	db         *sql.DB
	transactor sharedPort.Transactor
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db:         db,
		transactor: database.NewPostgresTransactor(db),
	}
}

// Create persiste la venta con sus líneas. Se une a la transacción del
// contexto; si no hay una, abre la suya para que venta y líneas sean atómicas.
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.transactor.WithinTx(ctx, func(ctx context.Context) error {
		conn := database.Conn(ctx, r.db)

		// 1. Insertar sale (aggregate root)
		querySale := `
			INSERT INTO sales (customer_id, seller_id, total, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		err := conn.QueryRowContext(ctx, querySale,
			sale.CustomerID,
			sale.SellerID,
			sale.Total,
			sale.CreatedAt,
		).Scan(&sale.ID)
		if err != nil {
			return mapSaleInsertError(err)
		}

		// 2. Insertar sale_lines en el orden recibido
		queryLine := `
			INSERT INTO sale_lines (
				sale_id, product_id, product_name,
				quantity, unit_price, subtotal, position
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			)
			RETURNING id
		`

		for i := range sale.Lines {
			line := &sale.Lines[i]
			line.SaleID = sale.ID

			err := conn.QueryRowContext(ctx, queryLine,
				line.SaleID,
				line.ProductID,
				line.ProductName,
				line.Quantity,
				line.UnitPrice,
				line.Subtotal,
				i+1,
			).Scan(&line.ID)
			if err != nil {
				if database.IsCheckViolation(err) {
					return &entity.ValidationError{Field: "quantity", Line: i + 1, Err: entity.ErrInvalidQuantity}
				}
				return fmt.Errorf("error creating sale_line for product %d: %w", line.ProductID, err)
			}
		}

		return nil
	})
}

func mapSaleInsertError(err error) error {
	if database.IsForeignKeyViolation(err) {
		switch database.ConstraintName(err) {
		case fkSalesCustomer:
			return entity.ErrCustomerNotFound
		case fkSalesSeller:
			return entity.ErrSellerNotFound
		}
	}
	return fmt.Errorf("error creating sale: %w", err)
}

// FindByID retorna la venta CON sus líneas
func (r *SalePostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	conn := database.Conn(ctx, r.db)

	querySale := `
		SELECT id, customer_id, seller_id, total, created_at
		FROM sales
		WHERE id = $1
	`

	sale := &entity.Sale{}
	err := conn.QueryRowContext(ctx, querySale, id).Scan(
		&sale.ID,
		&sale.CustomerID,
		&sale.SellerID,
		&sale.Total,
		&sale.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding sale %d: %w", id, err)
	}

	queryLines := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, subtotal
		FROM sale_lines
		WHERE sale_id = $1
		ORDER BY position
	`

	rows, err := conn.QueryContext(ctx, queryLines, id)
	if err != nil {
		return nil, fmt.Errorf("error querying sale_lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		line := entity.SaleLine{}
		err := rows.Scan(
			&line.ID,
			&line.SaleID,
			&line.ProductID,
			&line.ProductName,
			&line.Quantity,
			&line.UnitPrice,
			&line.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale_line: %w", err)
		}
		sale.Lines = append(sale.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale_lines: %w", err)
	}

	return sale, nil
}
