package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gandallf070/trebol/src/inventory/application/response"
	"github.com/gandallf070/trebol/src/inventory/domain/entity"
	"github.com/gandallf070/trebol/src/inventory/domain/port"
)

// GetStockDepletionUseCase consulta el registro de agotamiento de un producto
type GetStockDepletionUseCase struct {
	depletionRepo port.StockDepletionRepository
	productRepo   port.ProductRepository
}

// NewGetStockDepletionUseCase crea una nueva instancia del caso de uso
func NewGetStockDepletionUseCase(depletionRepo port.StockDepletionRepository, productRepo port.ProductRepository) *GetStockDepletionUseCase {
	return &GetStockDepletionUseCase{
		depletionRepo: depletionRepo,
		productRepo:   productRepo,
	}
}

// Execute devuelve entity.ErrStockDepletionNotFound si el producto nunca se agotó
func (uc *GetStockDepletionUseCase) Execute(ctx context.Context, productID int64) (*response.StockDepletionResponse, error) {
	depletion, err := uc.depletionRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if depletion == nil {
		return nil, entity.ErrStockDepletionNotFound
	}

	resp := toStockDepletionResponse(depletion)
	product, err := uc.productRepo.FindByID(ctx, productID)
	switch {
	case err == nil:
		withProduct(&resp, product)
	case !errors.Is(err, entity.ErrProductNotFound):
		return nil, fmt.Errorf("error loading product %d: %w", productID, err)
	}

	return &resp, nil
}
