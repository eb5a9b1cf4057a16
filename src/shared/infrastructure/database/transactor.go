package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gandallf070/trebol/src/shared/domain/port"
)

// PostgresTransactor implementa port.Transactor sobre database/sql
type PostgresTransactor struct {
	db *sql.DB
}

// NewPostgresTransactor crea una nueva instancia del transactor
func NewPostgresTransactor(db *sql.DB) port.Transactor {
	return &PostgresTransactor{db: db}
}

// WithinTx abre una transacción, ejecuta fn y confirma. Los locks FOR UPDATE
// tomados por los repositorios se liberan recién en el commit o rollback.
func (t *PostgresTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(withTx(ctx, tx)); err != nil {
		return translate(err)
	}

	if err := tx.Commit(); err != nil {
		return translate(fmt.Errorf("error committing transaction: %w", err))
	}

	return nil
}
