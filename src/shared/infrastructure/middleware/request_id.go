package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader header de correlación
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID propaga X-Request-ID o genera uno nuevo
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID devuelve el id de la request actual, o "" si no hay
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
