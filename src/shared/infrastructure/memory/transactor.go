package memory

import (
	"context"
	"sync"

	"github.com/gandallf070/trebol/src/shared/domain/port"
)

// Transactor implementa port.Transactor en memoria. Serializa las
// transacciones con un único mutex, lo que equivale a tomar el lock de todas
// las filas a la vez, y revierte aplicando el undo log en orden inverso.
type Transactor struct {
	mu sync.Mutex
}

// NewTransactor crea un transactor en memoria
func NewTransactor() *Transactor {
	return &Transactor{}
}

var _ port.Transactor = (*Transactor)(nil)

type txState struct {
	undo []func()
}

type txKey struct{}

// WithinTx ejecuta fn de forma exclusiva; si fn falla o entra en pánico se
// deshacen sus escrituras antes de liberar el lock
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	state := &txState{}
	defer func() {
		if r := recover(); r != nil {
			state.rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, state)); err != nil {
		state.rollback()
		return err
	}
	return nil
}

func (s *txState) rollback() {
	for i := len(s.undo) - 1; i >= 0; i-- {
		s.undo[i]()
	}
	s.undo = nil
}

// OnRollback registra una función que deshace una escritura. Fuera de una
// transacción la escritura es definitiva y la función se descarta.
func OnRollback(ctx context.Context, undo func()) {
	if state, ok := ctx.Value(txKey{}).(*txState); ok {
		state.undo = append(state.undo, undo)
	}
}
