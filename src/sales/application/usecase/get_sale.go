package usecase

import (
	"context"

	"github.com/gandallf070/trebol/src/sales/application/response"
	"github.com/gandallf070/trebol/src/sales/domain/port"
)

// GetSaleUseCase caso de uso para obtener una venta por ID
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleUseCase crea una nueva instancia del caso de uso
func NewGetSaleUseCase(saleRepo port.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute lectura de display, sin transacción ni locks
func (uc *GetSaleUseCase) Execute(ctx context.Context, saleID int64) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return response.NewSaleResponse(sale), nil
}
