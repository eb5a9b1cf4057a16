package usecase

import (
	"context"
	"errors"
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

// CreateSaleUseCase caso de uso para registrar una venta multi-línea
type CreateSaleUseCase struct {
	transactor   sharedPort.Transactor
	customerRepo port.CustomerRepository
	saleRepo     port.SaleRepository
	ledger       port.InventoryLedger
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

// NewCreateSaleUseCase crea una nueva instancia del caso de uso
func NewCreateSaleUseCase(
	transactor sharedPort.Transactor,
	customerRepo port.CustomerRepository,
	saleRepo port.SaleRepository,
	ledger port.InventoryLedger,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		transactor:   transactor,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		ledger:       ledger,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// Execute registra la venta en una única transacción:
// 1. Resolver el cliente
// 2. Bloquear los productos en orden ascendente de ID
// 3. Por cada línea, en el orden recibido: existencia del producto, foto del
// precio, subtotal y descuento de stock
// 4. Persistir la venta con total = suma de subtotales
// Cualquier error revierte todo: no quedan ventas ni descuentos parciales.
// La forma del pedido (campos obligatorios, cantidades > 0) ya la validó el
// binding del controlador; acá quedan las reglas del dominio.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, sellerID int64, req *request.CreateSaleRequest) (*response.SaleResponse, error) {
	if sellerID <= 0 {
		return nil, uc.fail(&entity.ValidationError{Field: "seller_id", Err: entity.ErrSellerRequired})
	}

	var sale *entity.Sale
	err := uc.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
			return err
		}

		products, err := uc.ledger.LockAll(ctx, req.ProductIDs())
		if err != nil {
			return err
		}

		lines := make([]entity.SaleLine, 0, len(req.Lines))
		for i, lineReq := range req.Lines {
			product, ok := products[lineReq.ProductID]
			if !ok {
				return &entity.ValidationError{
					Field: "product_id",
					Line:  i + 1,
					Err:   &inventoryEntity.ProductNotFoundError{ProductID: lineReq.ProductID},
				}
			}

			line, err := entity.NewSaleLine(product.ID, product.Name, lineReq.Quantity, product.Price)
			if err != nil {
				return &entity.ValidationError{Field: "quantity", Line: i + 1, Err: err}
			}

			if _, err := uc.ledger.Decrement(ctx, product, lineReq.Quantity); err != nil {
				if errors.Is(err, inventoryEntity.ErrInsufficientStock) {
					return &entity.ValidationError{Field: "quantity", Line: i + 1, Err: err}
				}
				return err
			}

			lines = append(lines, *line)
		}

		created, err := entity.NewSale(req.CustomerID, sellerID, lines, uc.now())
		if err != nil {
			return err
		}
		if err := uc.saleRepo.Create(ctx, created); err != nil {
			return err
		}

		sale = created
		return nil
	})
	if err != nil {
		return nil, uc.fail(err)
	}

	uc.metrics.SaleCreated(sale.Total)
	uc.logger.Info("sale created",
		zap.Int64("saleId", sale.ID),
		zap.Int64("customerId", sale.CustomerID),
		zap.Int64("sellerId", sale.SellerID),
		zap.Int("lines", sale.TotalItems()),
		zap.String("total", sale.Total.StringFixed(2)))

	return response.NewSaleResponse(sale), nil
}

func (uc *CreateSaleUseCase) fail(err error) error {
	reason := saleFailureReason(err)
	uc.metrics.SaleFailed(reason)
	if reason == "internal" {
		uc.logger.Error("sale failed", zap.Error(err))
	} else {
		uc.logger.Warn("sale rejected", zap.String("reason", reason), zap.Error(err))
	}
	return err
}

func saleFailureReason(err error) string {
	switch {
	case errors.Is(err, inventoryEntity.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, inventoryEntity.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, entity.ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, entity.ErrSellerNotFound):
		return "seller_not_found"
	case errors.Is(err, sharedPort.ErrConcurrentUpdate):
		return "concurrent_update"
	}
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return "validation"
	}
	return "internal"
}
