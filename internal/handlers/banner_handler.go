package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/x07b/Houssem/internal/db"
	"github.com/x07b/Houssem/internal/models"
)

// GET /api/banners — active banners for the homepage carousel.
func ListActiveBanners(c *gin.Context) {
	banners := []models.Banner{}
	if err := db.DB.Where("active = ?", true).Find(&banners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list banners"})
		return
	}

	c.JSON(http.StatusOK, banners)
}

// GET /api/admin/banners
func ListBanners(c *gin.Context) {
	banners := []models.Banner{}
	if err := db.DB.Find(&banners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list banners"})
		return
	}

	c.JSON(http.StatusOK, banners)
}

type BannerRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title" binding:"required"`
	Image  string `json:"image"`
	Active bool   `json:"active"`
}

// POST /api/admin/banners — insert or replace by id.
func UpsertBanner(c *gin.Context) {
	var req BannerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrors(err)})
		return
	}

	banner := models.Banner{ID: req.ID, Title: req.Title, Image: req.Image, Active: req.Active}
	if banner.ID == "" {
		banner.ID = uuid.NewString()
	}

	if err := db.DB.Save(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save banner"})
		return
	}

	c.JSON(http.StatusOK, banner)
}

// DELETE /api/admin/banners/:id
func DeleteBanner(c *gin.Context) {
	if err := db.DB.Delete(&models.Banner{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
