package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gandallf070/trebol/src/inventory/application/request"
	"github.com/gandallf070/trebol/src/inventory/application/usecase"
	"github.com/gandallf070/trebol/src/inventory/domain/entity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StockDepletionController maneja las peticiones HTTP del reporte de productos agotados
type StockDepletionController struct {
	listUC   *usecase.ListStockDepletionsUseCase
	getUC    *usecase.GetStockDepletionUseCase
	createUC *usecase.CreateStockDepletionUseCase
	logger   *zap.Logger
}

// NewStockDepletionController crea una nueva instancia del controlador
func NewStockDepletionController(
	listUC *usecase.ListStockDepletionsUseCase,
	getUC *usecase.GetStockDepletionUseCase,
	createUC *usecase.CreateStockDepletionUseCase,
	logger *zap.Logger,
) *StockDepletionController {
	return &StockDepletionController{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		logger:   logger,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *StockDepletionController) RegisterRoutes(router *gin.RouterGroup) {
	depletions := router.Group("/stock-depletions")
	{
		depletions.GET("", c.List)
		depletions.GET("/:product_id", c.Get)
		depletions.POST("", c.Create)
	}

	c.logger.Info("stock depletion routes registered",
		zap.Strings("routes", []string{
			"GET    /api/v1/stock-depletions",
			"GET    /api/v1/stock-depletions/:product_id",
			"POST   /api/v1/stock-depletions",
		}))
}

// List devuelve todos los productos agotados
func (c *StockDepletionController) List(ctx *gin.Context) {
	resp, err := c.listUC.Execute(ctx.Request.Context())
	if err != nil {
		c.logger.Error("error listing stock depletions", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error listing stock depletions",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Get devuelve el registro de agotamiento de un producto
func (c *StockDepletionController) Get(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "product_id must be a positive integer",
			"field": "product_id",
		})
		return
	}

	resp, err := c.getUC.Execute(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, entity.ErrStockDepletionNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Stock depletion not found for this product"})
			return
		}
		c.logger.Error("error getting stock depletion", zap.Int64("productId", productID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error getting stock depletion",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create registra manualmente un producto agotado
func (c *StockDepletionController) Create(ctx *gin.Context) {
	var req request.CreateStockDepletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.createUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, entity.ErrStockDepletionAlreadyRecorded):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Stock depletion already recorded for this product"})
		case errors.Is(err, entity.ErrInvalidDepletionQuantities):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.logger.Error("error creating stock depletion", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Error creating stock depletion",
				"details": err.Error(),
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}
