package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/x07b/Houssem/internal/db"
	"github.com/x07b/Houssem/internal/models"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// GET /api/categories — published categories only.
func ListCategories(c *gin.Context) {
	categories := []models.Category{}
	if err := db.DB.Where("published = ?", true).Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GET /api/categories/:slug/products
func ListCategoryProducts(c *gin.Context) {
	var category models.Category
	err := db.DB.First(&category, "slug = ?", c.Param("slug")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up category"})
		return
	}

	products := []models.Product{}
	if err := db.DB.Preload("Variants").Where("category_id = ?", category.ID).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /api/admin/categories — includes unpublished.
func ListAdminCategories(c *gin.Context) {
	categories := []models.Category{}
	if err := db.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

type CategoryRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	Published *bool  `json:"published"`
}

// POST /api/admin/categories — creates when no id is given, updates otherwise.
func UpsertCategory(c *gin.Context) {
	var req CategoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	if req.ID != "" {
		var category models.Category
		if err := db.DB.First(&category, "id = ?", req.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		category.Name = name
		category.Slug = slugify(name)
		if req.Published != nil {
			category.Published = *req.Published
		}
		if err := db.DB.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
		return
	}

	slug := slugify(name)
	var count int64
	if err := db.DB.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category exists"})
		return
	}

	category := models.Category{ID: uuid.NewString(), Name: name, Slug: slug, Published: true}
	if req.Published != nil {
		category.Published = *req.Published
	}
	if err := db.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// DELETE /api/admin/categories/:id — refused while products still reference
// the category.
func DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	var used int64
	if err := db.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&used).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}
	if used > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category is used by products"})
		return
	}

	result := db.DB.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "removed": result.RowsAffected})
}
