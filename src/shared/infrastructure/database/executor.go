package database

import (
	"context"
	"database/sql"
)

// Executor es el subconjunto común de *sql.DB y *sql.Tx que usan los repositorios
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext devuelve la transacción en curso, si existe
func TxFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// Conn devuelve la transacción del contexto o, si no hay, el pool.
// Las lecturas de solo display pueden ir por el pool; toda escritura
// de inventario debe ejecutarse dentro de WithinTx.
func Conn(ctx context.Context, db *sql.DB) Executor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db
}
