package entity

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrStockDepletionAlreadyRecorded = errors.New("stock depletion already recorded for product")
	ErrStockDepletionNotFound        = errors.New("stock depletion not found")
	ErrInvalidDepletionQuantities    = errors.New("initial_quantity and quantity_sold must be greater than or equal to 0")
)

// ProductNotFoundError identifica qué producto no existe
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// InsufficientStockError detalla el faltante de una línea
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (product %d): available %d, requested %d",
		e.ProductName, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
