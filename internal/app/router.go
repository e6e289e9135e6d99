package app

import (
	"github.com/gin-gonic/gin"

	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/middleware"
	"github.com/mpcastro/recipebook-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:       serviceName,
		CORSOrigins:       cfg.CORSOrigins,
		RequestLog:        middleware.NewRequestLogMiddleware(log),
		CategoryHandler:   handlerset.Category,
		IngredientHandler: handlerset.Ingredient,
		RecipeHandler:     handlerset.Recipe,
	})
}
