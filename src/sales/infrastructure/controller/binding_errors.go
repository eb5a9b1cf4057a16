package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gandallf070/trebol/src/sales/domain/entity"

	"github.com/go-playground/validator/v10"
)

// bindingFields campo JSON y error de dominio de cada campo con tags binding
var bindingFields = map[string]struct {
	name string
	err  error
}{
	"CustomerID": {"customer_id", entity.ErrCustomerRequired},
	"Lines":      {"lines", entity.ErrSaleMustHaveLines},
	"Items":      {"items", entity.ErrReturnMustHaveItems},
	"ProductID":  {"product_id", entity.ErrProductRequired},
	"Quantity":   {"quantity", entity.ErrInvalidQuantity},
}

// bindingError traduce el primer error del validador de gin a un
// ValidationError con campo y número de línea. Devuelve nil si err no viene
// del validador (JSON mal formado, tipos incorrectos).
func bindingError(err error) *entity.ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return nil
	}

	fe := fieldErrs[0]
	field, ok := bindingFields[fe.Field()]
	if !ok {
		return &entity.ValidationError{Field: fe.Field(), Err: err}
	}
	return &entity.ValidationError{
		Field: field.name,
		Line:  lineFromNamespace(fe.Namespace()),
		Err:   field.err,
	}
}

// lineFromNamespace número de línea (desde 1) de un namespace como
// "CreateSaleRequest.Lines[2].Quantity"; 0 si el campo no es de una línea
func lineFromNamespace(namespace string) int {
	open := strings.IndexByte(namespace, '[')
	if open < 0 {
		return 0
	}
	end := strings.IndexByte(namespace[open:], ']')
	if end < 0 {
		return 0
	}
	idx, err := strconv.Atoi(namespace[open+1 : open+end])
	if err != nil {
		return 0
	}
	return idx + 1
}
