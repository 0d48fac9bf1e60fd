package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/x07b/Houssem/internal/db"
	"github.com/x07b/Houssem/internal/models"
)

// GET /api/toggles (public) and /api/admin/toggles
func GetToggles(c *gin.Context) {
	var toggles models.HomeToggles
	if err := db.DB.First(&toggles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load toggles"})
		return
	}

	c.JSON(http.StatusOK, toggles)
}

type TogglesRequest struct {
	ShowNewsletter *bool `json:"showNewsletter"`
	ShowPremium    *bool `json:"showPremium"`
	ShowPromo      *bool `json:"showPromo"`
}

// PUT /api/admin/toggles — partial merge: absent fields keep their value.
func SetToggles(c *gin.Context) {
	var req TogglesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var toggles models.HomeToggles
	if err := db.DB.First(&toggles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load toggles"})
		return
	}

	if req.ShowNewsletter != nil {
		toggles.ShowNewsletter = *req.ShowNewsletter
	}
	if req.ShowPremium != nil {
		toggles.ShowPremium = *req.ShowPremium
	}
	if req.ShowPromo != nil {
		toggles.ShowPromo = *req.ShowPromo
	}

	if err := db.DB.Save(&toggles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save toggles"})
		return
	}

	c.JSON(http.StatusOK, toggles)
}
