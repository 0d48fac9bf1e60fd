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

func findOrderByCode(code string) (models.Order, error) {
	var order models.Order
	err := db.DB.Preload("Items").
		Where("upper(code) = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&order).Error
	return order, err
}

// GET /api/orders/:code — public order-confirmation lookup, also mounted
// under the admin group. Matching is case-insensitive.
func GetOrderByCode(c *gin.Context) {
	order, err := findOrderByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GET /api/admin/orders
func ListOrders(c *gin.Context) {
	orders := []models.Order{}
	if err := db.DB.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid cancelled"`
}

// PUT /api/admin/orders/:code/status — the only mutation an order admits
// after creation.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrors(err)})
		return
	}

	order, err := findOrderByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up order"})
		return
	}

	if err := db.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
		return
	}

	order.Status = req.Status
	c.JSON(http.StatusOK, order)
}
