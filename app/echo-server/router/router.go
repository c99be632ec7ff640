package router

import (
	"github.com/labstack/echo/v4"

	"smartShopper/internal/rest"
)

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct)
	products.PUT("/:id", handler.UpdateProduct)
	products.DELETE("/:id", handler.DeleteProduct)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")
	reco.POST("", handler.Rank)
}

func SetupSearchRoutes(api *echo.Group, handler *rest.SearchHandler) {
	api.POST("/search", handler.Search)
}

func SetupAnalysisRoutes(api *echo.Group, handler *rest.AnalysisHandler) {
	api.GET("/products/:id/analysis", handler.TruthScore)
	api.POST("/analysis/compare", handler.Compare)
}

func SetupReviewAggregateRoutes(api *echo.Group, handler *rest.ReviewAggregateHandler) {
	api.PUT("/products/:id/review-aggregate", handler.Upsert)
}
