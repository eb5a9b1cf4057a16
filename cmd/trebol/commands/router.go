package commands

import (
	"context"
	"net/http"
	"time"

	inventoryService "github.com/gandallf070/trebol/src/inventory/application/service"
	inventoryUseCase "github.com/gandallf070/trebol/src/inventory/application/usecase"
	inventoryController "github.com/gandallf070/trebol/src/inventory/infrastructure/controller"
	salesUseCase "github.com/gandallf070/trebol/src/sales/application/usecase"
	salesController "github.com/gandallf070/trebol/src/sales/infrastructure/controller"
	"github.com/gandallf070/trebol/src/shared/infrastructure/config"
	"github.com/gandallf070/trebol/src/shared/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const version = "1.0.0"

// newRouter arma el router con los módulos de inventario y ventas
func newRouter(cfg config.Config, store *storage, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	config.SetupSharedMiddleware(router, config.DefaultSharedConfig(), log)

	var m *metrics.Metrics
	if cfg.PrometheusEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(registry)
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
		log.Info("/metrics endpoint registered")
	} else {
		log.Info("prometheus metrics disabled")
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	health := healthHandler(store)
	router.GET("/health", health)
	v1.GET("/health", health)

	ledger := setupInventoryModule(v1, store, m, log)
	setupSalesModule(v1, store, ledger, m, log)

	return router
}

// setupInventoryModule configura el módulo de inventario y devuelve el ledger
// que comparte con ventas
func setupInventoryModule(router *gin.RouterGroup, store *storage, m *metrics.Metrics, log *zap.Logger) *inventoryService.InventoryLedger {
	recorder := inventoryService.NewStockDepletionRecorder(store.depletions, m, log)
	ledger := inventoryService.NewInventoryLedger(store.products, recorder, log)

	listUC := inventoryUseCase.NewListStockDepletionsUseCase(store.depletions, store.products)
	getUC := inventoryUseCase.NewGetStockDepletionUseCase(store.depletions, store.products)
	createUC := inventoryUseCase.NewCreateStockDepletionUseCase(store.transactor, store.products, recorder)

	inventoryController.NewStockDepletionController(listUC, getUC, createUC, log).RegisterRoutes(router)
	return ledger
}

// setupSalesModule configura el módulo de ventas
func setupSalesModule(router *gin.RouterGroup, store *storage, ledger *inventoryService.InventoryLedger, m *metrics.Metrics, log *zap.Logger) {
	createSaleUC := salesUseCase.NewCreateSaleUseCase(store.transactor, store.customers, store.sales, ledger, m, log)
	getSaleUC := salesUseCase.NewGetSaleUseCase(store.sales)
	returnLinesUC := salesUseCase.NewReturnLinesUseCase(store.transactor, store.sales, ledger, m, log)

	salesController.NewSaleController(createSaleUC, getSaleUC, returnLinesUC, log).RegisterRoutes(router)
}

func healthHandler(store *storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		body := gin.H{
			"status":  "ok",
			"storage": store.name,
			"version": version,
		}
		if err := store.ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["error"] = err.Error()
		}
		c.JSON(status, body)
	}
}
