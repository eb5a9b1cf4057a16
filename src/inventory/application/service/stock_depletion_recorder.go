package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gandallf070/trebol/src/inventory/domain/entity"
	"github.com/gandallf070/trebol/src/inventory/domain/port"
	"github.com/gandallf070/trebol/src/shared/infrastructure/metrics"

	"go.uber.org/zap"
)

// DepletionInput datos para registrar un producto agotado
type DepletionInput struct {
	ProductID       int64
	InitialQuantity int
	QuantitySold    int
	PeriodStart     *time.Time
	LifetimeDays    *int
}

// StockDepletionRecorder registra, una única vez por producto, cuándo se agotó
type StockDepletionRecorder struct {
	repo    port.StockDepletionRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewStockDepletionRecorder crea una nueva instancia del recorder
func NewStockDepletionRecorder(repo port.StockDepletionRepository, m *metrics.Metrics, logger *zap.Logger) *StockDepletionRecorder {
	return &StockDepletionRecorder{
		repo:    repo,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// RecordDepletion crea el registro con depleted_at = ahora.
// Si el producto ya tiene uno devuelve entity.ErrStockDepletionAlreadyRecorded
// sin modificar nada.
func (r *StockDepletionRecorder) RecordDepletion(ctx context.Context, in DepletionInput) (*entity.StockDepletion, error) {
	depletion, err := entity.NewStockDepletion(
		in.ProductID,
		in.InitialQuantity,
		in.QuantitySold,
		in.PeriodStart,
		in.LifetimeDays,
		r.now(),
	)
	if err != nil {
		return nil, err
	}

	created, err := r.repo.CreateIfAbsent(ctx, depletion)
	if err != nil {
		return nil, fmt.Errorf("error recording stock depletion for product %d: %w", in.ProductID, err)
	}
	if !created {
		return nil, entity.ErrStockDepletionAlreadyRecorded
	}

	r.metrics.StockDepleted()
	r.logger.Info("stock depletion recorded",
		zap.Int64("productId", depletion.ProductID),
		zap.Int("initialQuantity", depletion.InitialQuantity),
		zap.Int("quantitySold", depletion.QuantitySold))

	return depletion, nil
}
