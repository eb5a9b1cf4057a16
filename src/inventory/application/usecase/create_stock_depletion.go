package usecase

import (
	"context"

	"github.com/gandallf070/trebol/src/inventory/application/request"
	"github.com/gandallf070/trebol/src/inventory/application/response"
	"github.com/gandallf070/trebol/src/inventory/application/service"
	"github.com/gandallf070/trebol/src/inventory/domain/port"
	sharedPort "github.com/gandallf070/trebol/src/shared/domain/port"
)

// CreateStockDepletionUseCase alta manual de un registro de agotamiento.
// Sirve para cargar productos que se agotaron antes de que existiera el
// registro automático; respeta la unicidad por producto.
type CreateStockDepletionUseCase struct {
	transactor  sharedPort.Transactor
	productRepo port.ProductRepository
	recorder    *service.StockDepletionRecorder
}

// NewCreateStockDepletionUseCase crea una nueva instancia del caso de uso
func NewCreateStockDepletionUseCase(
	transactor sharedPort.Transactor,
	productRepo port.ProductRepository,
	recorder *service.StockDepletionRecorder,
) *CreateStockDepletionUseCase {
	return &CreateStockDepletionUseCase{
		transactor:  transactor,
		productRepo: productRepo,
		recorder:    recorder,
	}
}

// Execute devuelve entity.ErrProductNotFound si el producto no existe y
// entity.ErrStockDepletionAlreadyRecorded si ya tiene registro
func (uc *CreateStockDepletionUseCase) Execute(ctx context.Context, req *request.CreateStockDepletionRequest) (*response.StockDepletionResponse, error) {
	var resp response.StockDepletionResponse

	err := uc.transactor.WithinTx(ctx, func(ctx context.Context) error {
		product, err := uc.productRepo.FindByID(ctx, req.ProductID)
		if err != nil {
			return err
		}

		depletion, err := uc.recorder.RecordDepletion(ctx, service.DepletionInput{
			ProductID:       product.ID,
			InitialQuantity: req.InitialQuantity,
			QuantitySold:    req.QuantitySold,
			PeriodStart:     req.PeriodStart,
			LifetimeDays:    req.LifetimeDays,
		})
		if err != nil {
			return err
		}

		resp = toStockDepletionResponse(depletion)
		withProduct(&resp, product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
