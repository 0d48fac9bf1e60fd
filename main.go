package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/x07b/Houssem/internal/auth"
	"github.com/x07b/Houssem/internal/db"
	"github.com/x07b/Houssem/internal/handlers"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	db.Init()
	auth.Init()

	r := gin.Default()

	// ── public endpoints ──
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		api.POST("/checkout", handlers.Checkout)
		api.GET("/orders/:code", handlers.GetOrderByCode)
		api.GET("/promo/:code", handlers.ValidatePromo)
		api.GET("/suggest", handlers.Suggest)

		api.GET("/products", handlers.ListProducts)
		api.GET("/products/:id", handlers.GetProduct)
		api.GET("/categories", handlers.ListCategories)
		api.GET("/categories/:slug/products", handlers.ListCategoryProducts)
		api.GET("/banners", handlers.ListActiveBanners)
		api.GET("/toggles", handlers.GetToggles)

		api.POST("/admin/login", auth.Login)
	}

	// ── protected admin API ──
	admin := api.Group("/admin")
	admin.Use(auth.RequireAuth())
	{
		admin.GET("/orders", handlers.ListOrders)
		admin.GET("/orders/:code", handlers.GetOrderByCode)
		admin.PUT("/orders/:code/status", handlers.UpdateOrderStatus)

		admin.GET("/products", handlers.ListProducts)
		admin.POST("/products", handlers.CreateProduct)
		admin.PUT("/products/:id", handlers.UpdateProduct)
		admin.DELETE("/products/:id", handlers.DeleteProduct)

		admin.GET("/categories", handlers.ListAdminCategories)
		admin.POST("/categories", handlers.UpsertCategory)
		admin.DELETE("/categories/:id", handlers.DeleteCategory)

		admin.GET("/banners", handlers.ListBanners)
		admin.POST("/banners", handlers.UpsertBanner)
		admin.DELETE("/banners/:id", handlers.DeleteBanner)

		admin.GET("/toggles", handlers.GetToggles)
		admin.PUT("/toggles", handlers.SetToggles)

		admin.GET("/promos", handlers.ListPromos)
		admin.POST("/promos", handlers.UpsertPromo)
		admin.DELETE("/promos/:id", handlers.DeletePromo)
	}

	r.Run(":" + getEnv("PORT", "8080"))
}

func getEnv(key, fallback string) string {

	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}
