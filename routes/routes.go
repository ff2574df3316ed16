package routes

import (
	"github.com/eoreilly0906/Spoon-API/config"
	"github.com/eoreilly0906/Spoon-API/controllers"
	"github.com/eoreilly0906/Spoon-API/middlewares"
	"github.com/eoreilly0906/Spoon-API/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	authCtl := controllers.NewAuthController(
		services.NewAuthService(db), cfg.JWTSecret, cfg.TokenTTL,
	)
	recipeCtl := controllers.NewRecipeController(services.NewRecipeService(db))
	searchCtl := controllers.NewSearchController(
		services.NewSpoonacularService(cfg.SpoonacularAPIKey),
		services.NewRecipeService(db),
	)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}
	auth.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtl.Me)

	// Protected recipe routes
	recipes := r.Group("/recipes")
	recipes.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		recipes.GET("", recipeCtl.List)
		recipes.POST("", recipeCtl.Create)
		recipes.POST("/import", searchCtl.Import)
		recipes.GET("/:id", recipeCtl.Get)
		recipes.PUT("/:id", recipeCtl.Update)
		recipes.DELETE("/:id", recipeCtl.Delete)
	}

	// Protected discovery routes
	search := r.Group("/search")
	search.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		search.GET("/recipes", searchCtl.Search)
		search.GET("/recipes/:id", searchCtl.Details)
	}

	return r
}
