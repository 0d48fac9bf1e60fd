package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/x07b/Houssem/internal/db"
	"github.com/x07b/Houssem/internal/models"
)

// GET /api/promo/:code — public promo validation. An unknown code is a
// normal outcome, reported as found=false rather than an error.
func ValidatePromo(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"found": false, "active": false, "percent": 0, "code": code})
		return
	}

	var promo models.Promo
	err := db.DB.Where("upper(id) = ?", code).First(&promo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"found": false, "active": false, "percent": 0, "code": code})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up promo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": true, "active": promo.Active, "percent": promo.Percent, "code": promo.ID})
}

// GET /api/admin/promos
func ListPromos(c *gin.Context) {
	promos := []models.Promo{}
	if err := db.DB.Find(&promos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list promos"})
		return
	}

	c.JSON(http.StatusOK, promos)
}

type PromoRequest struct {
	ID      string  `json:"id" binding:"required"`
	Percent float64 `json:"percent" binding:"gte=0,lte=100"`
	Active  bool    `json:"active"`
}

// POST /api/admin/promos — insert or replace; codes are stored uppercase.
func UpsertPromo(c *gin.Context) {
	var req PromoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrors(err)})
		return
	}

	promo := models.Promo{
		ID:      strings.ToUpper(strings.TrimSpace(req.ID)),
		Percent: req.Percent,
		Active:  req.Active,
	}

	if err := db.DB.Save(&promo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save promo"})
		return
	}

	c.JSON(http.StatusOK, promo)
}

// DELETE /api/admin/promos/:id
func DeletePromo(c *gin.Context) {
	id := strings.ToUpper(strings.TrimSpace(c.Param("id")))
	if err := db.DB.Delete(&models.Promo{}, "upper(id) = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete promo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
