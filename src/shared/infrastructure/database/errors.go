package database

import (
	"errors"
	"fmt"

	"github.com/gandallf070/trebol/src/shared/domain/port"

	"github.com/lib/pq"
)

// Códigos SQLSTATE relevantes
const (
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsForeignKeyViolation indica si err es una violación de FOREIGN KEY
func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == codeForeignKeyViolation
}

// IsCheckViolation indica si err es una violación de CHECK
func IsCheckViolation(err error) bool {
	return pqCode(err) == codeCheckViolation
}

// ConstraintName nombre de la constraint violada, si err es un *pq.Error
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

// IsRetryable indica si la base abortó la transacción por deadlock o serialización
func IsRetryable(err error) bool {
	switch pqCode(err) {
	case codeDeadlockDetected, codeSerializationFailure:
		return true
	}
	return false
}

// translate convierte errores transitorios del motor en port.ErrConcurrentUpdate
func translate(err error) error {
	if err == nil {
		return nil
	}
	if IsRetryable(err) {
		return fmt.Errorf("%w: %v", port.ErrConcurrentUpdate, err)
	}
	return err
}
