package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su stock.
// AvailableQuantity y Active sólo se modifican con Decrement/Increment,
// siempre sobre una fila bloqueada por el InventoryLedger.
type Product struct {
	ID                int64           `json:"id"`
	CategoryID        int64           `json:"category_id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int             `json:"available_quantity"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CanSell indica si hay stock suficiente para vender quantity unidades
func (p *Product) CanSell(quantity int) bool {
	return quantity <= p.AvailableQuantity
}

// Decrement descuenta quantity unidades. Devuelve la cantidad previa y si el
// producto quedó agotado; al llegar a cero se desactiva.
func (p *Product) Decrement(quantity int) (before int, depleted bool, err error) {
	if quantity <= 0 {
		return p.AvailableQuantity, false, ErrInvalidQuantity
	}
	if !p.CanSell(quantity) {
		return p.AvailableQuantity, false, &InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Requested:   quantity,
			Available:   p.AvailableQuantity,
		}
	}

	before = p.AvailableQuantity
	p.AvailableQuantity -= quantity
	p.UpdatedAt = time.Now()

	if p.AvailableQuantity == 0 {
		p.Active = false
		return before, true, nil
	}
	return before, false, nil
}

// Increment repone quantity unidades y reactiva el producto si queda stock,
// aunque hubiera sido desactivado manualmente.
func (p *Product) Increment(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p.AvailableQuantity += quantity
	p.UpdatedAt = time.Now()
	if p.AvailableQuantity > 0 {
		p.Active = true
	}
	return nil
}
