package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	config "github.com/x07b/Houssem/configs"
	"github.com/x07b/Houssem/internal/db"
	"github.com/x07b/Houssem/internal/models"
)

var (
	secret        []byte
	tokenTTL      time.Duration
	adminUsername string
	adminPassword string
)

func Init() {
	cfg := config.LoadAuthConfig()

	secret = []byte(cfg.TokenSecret)
	tokenTTL = cfg.TokenTTL
	adminUsername = cfg.AdminUsername
	adminPassword = cfg.AdminPassword
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────────────────────────────────────

// POST /api/admin/login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing credentials"})
		return
	}

	if !checkCredentials(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := IssueToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
}

// Admins live in the admins table; the configured dev credentials are a
// fallback so a fresh install is reachable before any admin row exists.
func checkCredentials(username, password string) bool {
	var admin models.Admin
	err := db.DB.Where("username = ?", username).First(&admin).Error
	if err == nil {
		return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}

	return username == adminUsername && password == adminPassword
}

// Middleware: rejects requests that do not carry a valid bearer token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		subject, err := VerifyToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("admin", subject)
		c.Next()
	}
}
