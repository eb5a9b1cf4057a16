package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gandallf070/trebol/src/inventory/application/response"
	"github.com/gandallf070/trebol/src/inventory/domain/entity"
	"github.com/gandallf070/trebol/src/inventory/domain/port"
)

// ListStockDepletionsUseCase caso de uso para el reporte de productos agotados
type ListStockDepletionsUseCase struct {
	depletionRepo port.StockDepletionRepository
	productRepo   port.ProductRepository
}

// NewListStockDepletionsUseCase crea una nueva instancia del caso de uso
func NewListStockDepletionsUseCase(depletionRepo port.StockDepletionRepository, productRepo port.ProductRepository) *ListStockDepletionsUseCase {
	return &ListStockDepletionsUseCase{
		depletionRepo: depletionRepo,
		productRepo:   productRepo,
	}
}

// Execute devuelve los registros, más recientes primero, con nombre y categoría del producto
func (uc *ListStockDepletionsUseCase) Execute(ctx context.Context) (*response.StockDepletionListResponse, error) {
	depletions, err := uc.depletionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]response.StockDepletionResponse, 0, len(depletions))
	for _, d := range depletions {
		item := toStockDepletionResponse(d)

		// N+1 lecturas de display; el reporte es chico
		product, err := uc.productRepo.FindByID(ctx, d.ProductID)
		switch {
		case err == nil:
			withProduct(&item, product)
		case !errors.Is(err, entity.ErrProductNotFound):
			return nil, fmt.Errorf("error loading product %d: %w", d.ProductID, err)
		}

		items = append(items, item)
	}

	return &response.StockDepletionListResponse{
		Items:      items,
		TotalCount: len(items),
	}, nil
}

func toStockDepletionResponse(d *entity.StockDepletion) response.StockDepletionResponse {
	return response.StockDepletionResponse{
		ID:              d.ID,
		ProductID:       d.ProductID,
		PeriodStart:     d.PeriodStart,
		DepletedAt:      d.DepletedAt,
		InitialQuantity: d.InitialQuantity,
		QuantitySold:    d.QuantitySold,
		LifetimeDays:    d.LifetimeDays,
	}
}

func withProduct(resp *response.StockDepletionResponse, product *entity.Product) {
	resp.ProductName = product.Name
	resp.CategoryID = product.CategoryID
}
