package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // Driver de PostgreSQL
)

// Options parámetros de conexión a PostgreSQL
type Options struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
}

// DSN arma el connection string para lib/pq
func (o Options) DSN() string {
	sslMode := o.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", o.User, o.Password, o.Host, o.Port, o.Name, sslMode)
}

// Open abre el pool y verifica la conexión
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	return OpenDSN(ctx, opts.DSN(), opts.MaxOpenConns)
}

// OpenDSN abre el pool a partir de un DSN ya armado
func OpenDSN(ctx context.Context, dsn string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}
