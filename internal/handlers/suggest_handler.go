package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/x07b/Houssem/internal/db"
	"github.com/x07b/Houssem/internal/models"
	"github.com/x07b/Houssem/internal/suggest"
)

// GET /api/suggest?q=
func Suggest(c *gin.Context) {
	var products []models.Product
	if err := db.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return
	}

	c.JSON(http.StatusOK, suggest.Rank(products, c.Query("q")))
}
