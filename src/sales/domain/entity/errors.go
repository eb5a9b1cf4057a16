package entity

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerRequired    = errors.New("customer_id is required")
	ErrSellerRequired      = errors.New("seller is required")
	ErrProductRequired     = errors.New("product_id is required")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInvalidPrice        = errors.New("price must be greater than or equal to 0")
	ErrSaleMustHaveLines   = errors.New("sale must have at least one line")
	ErrReturnMustHaveItems = errors.New("return must have at least one item")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrLineNotFound     = errors.New("product was not part of the sale")
	ErrExcessiveReturn  = errors.New("return quantity exceeds sold quantity")
)

// ValidationError asocia un error a un campo y, si corresponde, a una línea
// del pedido (numeradas desde 1; 0 = sin línea)
type ValidationError struct {
	Field string
	Line  int
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LineNotFoundError el producto no figura en la venta
type LineNotFoundError struct {
	SaleID    int64
	ProductID int64
}

func (e *LineNotFoundError) Error() string {
	return fmt.Sprintf("product %d was not part of sale %d", e.ProductID, e.SaleID)
}

func (e *LineNotFoundError) Is(target error) bool {
	return target == ErrLineNotFound
}

// ExcessiveReturnError se pidió devolver más de lo vendido en la línea
type ExcessiveReturnError struct {
	ProductID   int64
	ProductName string
	Sold        int
	Requested   int
}

func (e *ExcessiveReturnError) Error() string {
	return fmt.Sprintf("cannot return %d units of %s (product %d): only %d were sold",
		e.Requested, e.ProductName, e.ProductID, e.Sold)
}

func (e *ExcessiveReturnError) Is(target error) bool {
	return target == ErrExcessiveReturn
}
