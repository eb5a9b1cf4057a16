package controller

import (
	"errors"
	"net/http"
	"strconv"

	inventoryEntity "github.com/gandallf070/trebol/src/inventory/domain/entity"
	"github.com/gandallf070/trebol/src/sales/application/request"
	"github.com/gandallf070/trebol/src/sales/application/usecase"
	"github.com/gandallf070/trebol/src/sales/domain/entity"
	sharedPort "github.com/gandallf070/trebol/src/shared/domain/port"
	"github.com/gandallf070/trebol/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SellerIDHeader identifica al vendedor que opera la venta
const SellerIDHeader = "X-Seller-ID"

const (
	immutableSaleDetail   = "Las ventas no se pueden modificar una vez creadas."
	undeletableSaleDetail = "Las ventas no se pueden eliminar."
)

// SaleController maneja las peticiones HTTP para ventas y devoluciones
type SaleController struct {
	createSaleUC  *usecase.CreateSaleUseCase
	getSaleUC     *usecase.GetSaleUseCase
	returnLinesUC *usecase.ReturnLinesUseCase
	logger        *zap.Logger
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	returnLinesUC *usecase.ReturnLinesUseCase,
	logger *zap.Logger,
) *SaleController {
	return &SaleController{
		createSaleUC:  createSaleUC,
		getSaleUC:     getSaleUC,
		returnLinesUC: returnLinesUC,
		logger:        logger,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.POST("", c.CreateSale)
		sales.GET("/:sale_id", c.GetSale)
		sales.PUT("/:sale_id", c.UpdateSale)
		sales.PATCH("/:sale_id", c.UpdateSale)
		sales.DELETE("/:sale_id", c.DeleteSale)
		sales.POST("/:sale_id/returns", c.ReturnLines)
	}

	c.logger.Info("sale routes registered",
		zap.Strings("routes", []string{
			"POST   /api/v1/sales",
			"GET    /api/v1/sales/:sale_id",
			"PUT    /api/v1/sales/:sale_id (405)",
			"PATCH  /api/v1/sales/:sale_id (405)",
			"DELETE /api/v1/sales/:sale_id (405)",
			"POST   /api/v1/sales/:sale_id/returns",
		}))
}

// CreateSale registra una venta
func (c *SaleController) CreateSale(ctx *gin.Context) {
	// 1. Validar header X-Seller-ID (OBLIGATORIO)
	sellerID, err := strconv.ParseInt(ctx.GetHeader(SellerIDHeader), 10, 64)
	if err != nil || sellerID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": SellerIDHeader + " header is required",
			"field": "seller_id",
		})
		return
	}

	// 2. Validar body
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.writeBindError(ctx, err)
		return
	}

	// 3. Ejecutar use case
	resp, err := c.createSaleUC.Execute(ctx.Request.Context(), sellerID, &req)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// GetSale devuelve una venta con sus líneas
func (c *SaleController) GetSale(ctx *gin.Context) {
	saleID, ok := parseSaleID(ctx)
	if !ok {
		return
	}

	resp, err := c.getSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateSale siempre rechaza: las ventas son inmutables
func (c *SaleController) UpdateSale(ctx *gin.Context) {
	ctx.JSON(http.StatusMethodNotAllowed, gin.H{"detail": immutableSaleDetail})
}

// DeleteSale siempre rechaza: las ventas no se eliminan
func (c *SaleController) DeleteSale(ctx *gin.Context) {
	ctx.JSON(http.StatusMethodNotAllowed, gin.H{"detail": undeletableSaleDetail})
}

// ReturnLines procesa la devolución de productos de una venta
func (c *SaleController) ReturnLines(ctx *gin.Context) {
	saleID, ok := parseSaleID(ctx)
	if !ok {
		return
	}

	var req request.ReturnLinesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.writeBindError(ctx, err)
		return
	}

	resp, err := c.returnLinesUC.Execute(ctx.Request.Context(), saleID, &req)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// writeBindError responde 400; los errores del validador salen con campo y línea
func (c *SaleController) writeBindError(ctx *gin.Context, err error) {
	if verr := bindingError(err); verr != nil {
		c.writeError(ctx, verr)
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}

func parseSaleID(ctx *gin.Context) (int64, bool) {
	saleID, err := strconv.ParseInt(ctx.Param("sale_id"), 10, 64)
	if err != nil || saleID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "sale_id must be a positive integer",
			"field": "sale_id",
		})
		return 0, false
	}
	return saleID, true
}

// writeError traduce los errores del dominio a respuestas HTTP
func (c *SaleController) writeError(ctx *gin.Context, err error) {
	body := gin.H{"error": err.Error()}

	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		body["field"] = verr.Field
		if verr.Line > 0 {
			body["line"] = verr.Line
		}
	}

	var stockErr *inventoryEntity.InsufficientStockError
	var excessive *entity.ExcessiveReturnError

	switch {
	case errors.As(err, &stockErr):
		body["product_id"] = stockErr.ProductID
		body["available"] = stockErr.Available
		body["requested"] = stockErr.Requested
		ctx.JSON(http.StatusConflict, body)
	case errors.As(err, &excessive):
		body["product_id"] = excessive.ProductID
		body["sold"] = excessive.Sold
		body["requested"] = excessive.Requested
		ctx.JSON(http.StatusBadRequest, body)
	case errors.Is(err, sharedPort.ErrConcurrentUpdate):
		body["retryable"] = true
		ctx.JSON(http.StatusConflict, body)
	case errors.Is(err, entity.ErrSaleNotFound),
		errors.Is(err, entity.ErrCustomerNotFound),
		errors.Is(err, inventoryEntity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, body)
	case errors.Is(err, entity.ErrSellerNotFound):
		body["field"] = "seller_id"
		ctx.JSON(http.StatusBadRequest, body)
	case verr != nil:
		ctx.JSON(http.StatusBadRequest, body)
	default:
		c.logger.Error("unexpected error",
			zap.String("requestId", middleware.GetRequestID(ctx)),
			zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": err.Error(),
		})
	}
}
