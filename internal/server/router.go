package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mpcastro/recipebook-backend/internal/handlers"
	"github.com/mpcastro/recipebook-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName       string
	CORSOrigins       []string
	RequestLog        *middleware.RequestLogMiddleware
	CategoryHandler   *handlers.CategoryHandler
	IngredientHandler *handlers.IngredientHandler
	RecipeHandler     *handlers.RecipeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cfg.RequestLog.Handle())

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Categories
		api.GET("/categories", cfg.CategoryHandler.List)
		api.POST("/categories", cfg.CategoryHandler.Create)
		api.GET("/categories/:id", cfg.CategoryHandler.Get)
		api.PATCH("/categories/:id", cfg.CategoryHandler.Update)
		api.DELETE("/categories/:id", cfg.CategoryHandler.Delete)

		// Ingredients
		api.GET("/ingredients", cfg.IngredientHandler.List)
		api.POST("/ingredients", cfg.IngredientHandler.Create)
		api.GET("/ingredients/:id", cfg.IngredientHandler.Get)
		api.PATCH("/ingredients/:id", cfg.IngredientHandler.Update)
		api.DELETE("/ingredients/:id", cfg.IngredientHandler.Delete)

		// Recipes
		api.GET("/recipes", cfg.RecipeHandler.List)
		api.POST("/recipes", cfg.RecipeHandler.Create)
		api.GET("/recipes/:id", cfg.RecipeHandler.Get)
		api.PATCH("/recipes/:id", cfg.RecipeHandler.Update)
		api.DELETE("/recipes/:id", cfg.RecipeHandler.Delete)
		api.POST("/recipes/:id/publish", cfg.RecipeHandler.Publish)
		api.POST("/recipes/:id/archive", cfg.RecipeHandler.Archive)
		api.GET("/recipes/:id/scale", cfg.RecipeHandler.Scale)

		// Shopping list
		api.POST("/shopping-list", cfg.RecipeHandler.ShoppingList)
	}

	return router
}
