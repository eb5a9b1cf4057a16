package port

import (
	"context"
	"errors"
)

// ErrConcurrentUpdate se devuelve cuando la base de datos aborta la transacción
// por un deadlock o un conflicto de serialización. El llamador puede reintentar.
var ErrConcurrentUpdate = errors.New("concurrent update conflict, retry the operation")

// Transactor define la unidad de trabajo atómica compartida por los módulos.
// Todo lo que fn ejecute con el ctx recibido participa de la misma transacción:
// si fn devuelve error se revierte completa, si no se confirma.
// Las llamadas anidadas se unen a la transacción en curso.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
