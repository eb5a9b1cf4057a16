package response

import (
	"time"

	"github.com/gandallf070/trebol/src/sales/domain/entity"

	"github.com/google/uuid"
)

const returnProcessedMessage = "Devolución procesada exitosamente"

// ReturnedItemResponse producto devuelto
type ReturnedItemResponse struct {
	ProductID        int64  `json:"product_id"`
	ProductName      string `json:"product_name"`
	ReturnedQuantity int    `json:"returned_quantity"`
}

// ReturnReceiptResponse comprobante de devolución
type ReturnReceiptResponse struct {
	Message            string                 `json:"message"`
	ReceiptID          uuid.UUID              `json:"receipt_id"`
	SaleID             int64                  `json:"sale_id"`
	ReturnedItems      []ReturnedItemResponse `json:"returned_items"`
	TotalReturnedItems int                    `json:"total_returned_items"`
	TotalUnits         int                    `json:"total_units"`
	ProcessedAt        time.Time              `json:"processed_at"`
}

// NewReturnReceiptResponse arma la respuesta desde el comprobante
func NewReturnReceiptResponse(receipt *entity.ReturnReceipt) *ReturnReceiptResponse {
	items := make([]ReturnedItemResponse, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, ReturnedItemResponse{
			ProductID:        item.ProductID,
			ProductName:      item.ProductName,
			ReturnedQuantity: item.Quantity,
		})
	}

	return &ReturnReceiptResponse{
		Message:            returnProcessedMessage,
		ReceiptID:          receipt.ID,
		SaleID:             receipt.SaleID,
		ReturnedItems:      items,
		TotalReturnedItems: len(items),
		TotalUnits:         receipt.TotalUnits(),
		ProcessedAt:        receipt.ProcessedAt,
	}
}
