package port

import (
	"context"

	"github.com/gandallf070/trebol/src/sales/domain/entity"
)

// CustomerRepository resolución de clientes; el ABM vive fuera de este servicio
type CustomerRepository interface {
	// FindByID devuelve entity.ErrCustomerNotFound si no existe
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
}
