package config

import (
	"github.com/gandallf070/trebol/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SharedMiddlewareConfig configuración de los middlewares compartidos
type SharedMiddlewareConfig struct {
	EnableRequestID        bool
	EnableAccessLog        bool
	AccessLogExcludedPaths []string
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedMiddlewareConfig {
	return SharedMiddlewareConfig{
		EnableRequestID:        true,
		EnableAccessLog:        true,
		AccessLogExcludedPaths: []string{"/health", "/metrics"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, cfg SharedMiddlewareConfig, log *zap.Logger) {
	router.Use(middleware.Recovery(log))

	if cfg.EnableRequestID {
		router.Use(middleware.RequestID())
	}

	if cfg.EnableAccessLog {
		router.Use(middleware.AccessLog(log, cfg.AccessLogExcludedPaths))
	}
}
