package usecase

import (
	"context"
	"time"

	inventoryEntity "github.com/gandallf070/trebol/src/inventory/domain/entity"
	"github.com/gandallf070/trebol/src/sales/application/request"
	"github.com/gandallf070/trebol/src/sales/application/response"
	"github.com/gandallf070/trebol/src/sales/domain/entity"
	"github.com/gandallf070/trebol/src/sales/domain/port"
	sharedPort "github.com/gandallf070/trebol/src/shared/domain/port"
	"github.com/gandallf070/trebol/src/shared/infrastructure/metrics"

	"go.uber.org/zap"
)

// ReturnLinesUseCase caso de uso para devolver productos de una venta
type ReturnLinesUseCase struct {
	transactor sharedPort.Transactor
	saleRepo   port.SaleRepository
	ledger     port.InventoryLedger
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewReturnLinesUseCase crea una nueva instancia del caso de uso
func NewReturnLinesUseCase(
	transactor sharedPort.Transactor,
	saleRepo port.SaleRepository,
	ledger port.InventoryLedger,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ReturnLinesUseCase {
	return &ReturnLinesUseCase{
		transactor: transactor,
		saleRepo:   saleRepo,
		ledger:     ledger,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

// Execute repone el stock de los ítems devueltos (todos o ninguno).
// La venta y sus líneas no se modifican.
func (uc *ReturnLinesUseCase) Execute(ctx context.Context, saleID int64, req *request.ReturnLinesRequest) (*response.ReturnReceiptResponse, error) {
	var receipt *entity.ReturnReceipt
	err := uc.transactor.WithinTx(ctx, func(ctx context.Context) error {
		sale, err := uc.saleRepo.FindByID(ctx, saleID)
		if err != nil {
			return err
		}

		resolved, err := sale.ResolveReturn(req.ToReturnItems())
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(resolved))
		for _, line := range resolved {
			ids = append(ids, line.ProductID)
		}
		products, err := uc.ledger.LockAll(ctx, ids)
		if err != nil {
			return err
		}

		for i, line := range resolved {
			product, ok := products[line.ProductID]
			if !ok {
				return &entity.ValidationError{
					Field: "product_id",
					Line:  i + 1,
					Err:   &inventoryEntity.ProductNotFoundError{ProductID: line.ProductID},
				}
			}
			if _, err := uc.ledger.Increment(ctx, product, line.Quantity); err != nil {
				return err
			}
		}

		receipt = entity.NewReturnReceipt(sale.ID, resolved, uc.now())
		return nil
	})
	if err != nil {
		uc.logger.Warn("return rejected", zap.Int64("saleId", saleID), zap.Error(err))
		return nil, err
	}

	uc.metrics.ReturnProcessed(receipt.TotalUnits())
	uc.logger.Info("return processed",
		zap.Int64("saleId", receipt.SaleID),
		zap.String("receiptId", receipt.ID.String()),
		zap.Int("units", receipt.TotalUnits()))

	return response.NewReturnReceiptResponse(receipt), nil
}
