package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/x07b/Houssem/internal/db"
	"github.com/x07b/Houssem/internal/models"
)

type ProductVariantRequest struct {
	Name  string       `json:"name" binding:"required"`
	Price models.Money `json:"price"`
}

type ProductRequest struct {
	Title           string                  `json:"title" binding:"required"`
	Description     string                  `json:"description"`
	Image           string                  `json:"image"`
	CategoryID      string                  `json:"categoryId"`
	DiscountPercent *int                    `json:"discountPercent" binding:"omitempty,gte=0,lte=100"`
	Price           models.Money            `json:"price"`
	Variants        []ProductVariantRequest `json:"variants" binding:"omitempty,dive"`
}

// GET /api/products
func ListProducts(c *gin.Context) {
	products := []models.Product{}
	if err := db.DB.Preload("Variants").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func GetProduct(c *gin.Context) {
	var product models.Product
	err := db.DB.Preload("Variants").First(&product, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// POST /api/admin/products
func CreateProduct(c *gin.Context) {
	var req ProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrors(err)})
		return
	}

	if req.CategoryID != "" {
		var category models.Category
		if err := db.DB.First(&category, "id = ?", req.CategoryID).Error; err != nil {

			errorMessage := fmt.Sprintf("Category not found with ID: %s", req.CategoryID)

			c.JSON(http.StatusNotFound, gin.H{"error": errorMessage})
			return
		}
	}

	product := models.Product{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		Image:           req.Image,
		CategoryID:      req.CategoryID,
		DiscountPercent: req.DiscountPercent,
		Price:           req.Price,
	}
	for _, v := range req.Variants {
		product.Variants = append(product.Variants, models.ProductVariant{
			ID:    uuid.NewString(),
			Name:  v.Name,
			Price: v.Price,
		})
	}

	if err := db.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// PUT /api/admin/products/:id
func UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := db.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up product"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrors(err)})
		return
	}

	if req.CategoryID != "" {
		var category models.Category
		if err := db.DB.First(&category, "id = ?", req.CategoryID).Error; err != nil {

			errorMessage := fmt.Sprintf("Category not found with ID: %s", req.CategoryID)

			c.JSON(http.StatusNotFound, gin.H{"error": errorMessage})
			return
		}
	}

	product.Title = req.Title
	product.Description = req.Description
	product.Image = req.Image
	product.CategoryID = req.CategoryID
	product.DiscountPercent = req.DiscountPercent
	product.Price = req.Price

	// Variants are replaced wholesale on update.
	if err := db.DB.Where("product_id = ?", product.ID).Delete(&models.ProductVariant{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	product.Variants = nil
	for _, v := range req.Variants {
		product.Variants = append(product.Variants, models.ProductVariant{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Name:      v.Name,
			Price:     v.Price,
		})
	}

	if err := db.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DELETE /api/admin/products/:id
func DeleteProduct(c *gin.Context) {
	result := db.DB.Delete(&models.Product{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := db.DB.Where("product_id = ?", c.Param("id")).Delete(&models.ProductVariant{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product variants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
