package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	config "github.com/x07b/Houssem/configs"
	"github.com/x07b/Houssem/internal/db"
	"github.com/x07b/Houssem/internal/models"
	"github.com/x07b/Houssem/internal/notifier"
	"github.com/x07b/Houssem/internal/ordercode"
)

// emailSendTimeout bounds how long a checkout response may wait on the mail
// relay before giving up and reporting emailSent=false.
const emailSendTimeout = 5 * time.Second

const maxCodeAttempts = 5

// generateCode is swappable in tests, mirroring db.SetTestDB.
var generateCode = ordercode.Generate

func SetCodeGenerator(fn func() string) {
	generateCode = fn
}

type CheckoutItem struct {
	ID  string `json:"id" binding:"required"`
	Qty int    `json:"qty" binding:"required,gt=0"`
}

type CheckoutRequest struct {
	Name      string         `json:"name" binding:"required,min=2"`
	Email     string         `json:"email" binding:"required,email"`
	Whatsapp  string         `json:"whatsapp" binding:"required,min=6"`
	Currency  string         `json:"currency" binding:"required,oneof=USD EUR TND EGP"`
	Items     []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	PromoCode string         `json:"promoCode" binding:"omitempty,max=64"`
	Notes     string         `json:"notes" binding:"omitempty,max=1000"`
}

// POST /api/checkout
func Checkout(c *gin.Context) {
	var req CheckoutRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrors(err)})
		return
	}

	order := models.Order{
		CreatedAt: time.Now(),
		Customer: models.Customer{
			Name:     req.Name,
			Email:    req.Email,
			Whatsapp: req.Whatsapp,
		},
		Currency:  req.Currency,
		Status:    models.OrderStatusPending,
		PromoCode: strings.ToUpper(strings.TrimSpace(req.PromoCode)),
		Notes:     req.Notes,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{ProductID: item.ID, Qty: item.Qty})
	}

	// The code is the primary key, so a collision fails the insert and we
	// re-roll. The order row and its items land in one transaction.
	persisted := false
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		order.Code = generateCode()

		err := db.DB.Create(&order).Error
		if err == nil {
			persisted = true
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
			return
		}
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderCode = ""
		}
	}
	if !persisted {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to allocate an order code"})
		return
	}

	// Notifications are best-effort: a relay failure must never roll back
	// or fail the checkout.
	emailSent := false
	if notifier.EmailConfigured() {
		ctx, cancel := context.WithTimeout(c.Request.Context(), emailSendTimeout)
		defer cancel()

		if err := notifier.SendOrderEmails(ctx, order); err != nil {
			log.Printf("Failed to send emails for order %s: %v", order.Code, err)
		} else {
			emailSent = true
		}
	} else {
		log.Printf("Email not configured. Order: %s", order.Code)
	}

	if notifier.SMSConfigured() {
		go func(phone, code string) {
			if err := notifier.SendOrderSMS(phone, code); err != nil {
				log.Printf("Failed to send SMS for order %s to %s: %v", code, phone, err)
			}
		}(order.Customer.Whatsapp, order.Code)
	}

	resp := gin.H{"code": order.Code, "whatsapp": nil, "emailSent": emailSent}
	if number := config.LoadStoreConfig().WhatsappNumber; number != "" {
		resp["whatsapp"] = number
	}
	c.JSON(http.StatusOK, resp)
}
