package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/x07b/Houssem/internal/auth"
	"github.com/x07b/Houssem/internal/db"
	"github.com/x07b/Houssem/internal/models"
)

func setupAuthTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	t.Setenv("ADMIN_TOKEN_SECRET", "auth-test-secret")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "root")
	auth.Init()

	testDB, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.Migrate(testDB); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	originalDB := db.DB
	db.SetTestDB(testDB)
	t.Cleanup(func() {
		db.SetTestDB(originalDB)
	})

	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/api/admin/login", auth.Login)

	admin := r.Group("/api/admin")
	admin.Use(auth.RequireAuth())
	{
		admin.GET("/ping", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	}

	return r, testDB
}

func postLogin(router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	reqBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAdminLogin(t *testing.T) {

	router, testDB := setupAuthTestRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	assert.NoError(t, testDB.Create(&models.Admin{Username: "houssem", PasswordHash: string(hash)}).Error)

	t.Run("Returns 400 when credentials are missing", func(t *testing.T) {
		recorder := postLogin(router, map[string]string{"username": "root"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Returns 401 for a wrong password with no side effects", func(t *testing.T) {
		recorder := postLogin(router, auth.LoginRequest{Username: "houssem", Password: "wrong"})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var response map[string]string
		json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.Equal(t, "Invalid credentials", response["error"])
		assert.NotContains(t, recorder.Body.String(), "token")

		// Nothing anywhere in the store was touched.
		var count int64
		testDB.Model(&models.Order{}).Count(&count)
		assert.Equal(t, int64(0), count)
		testDB.Model(&models.Product{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Issues a working token for a stored admin", func(t *testing.T) {
		recorder := postLogin(router, auth.LoginRequest{Username: "houssem", Password: "s3cret"})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			OK    bool   `json:"ok"`
			Token string `json:"token"`
		}
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.OK)
		assert.NotEmpty(t, response.Token)

		subject, err := auth.VerifyToken(response.Token)
		assert.NoError(t, err)
		assert.Equal(t, "houssem", subject)
	})

	t.Run("Falls back to the configured dev credentials", func(t *testing.T) {
		recorder := postLogin(router, auth.LoginRequest{Username: "root", Password: "root"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestRequireAuthMiddleware(t *testing.T) {

	router, _ := setupAuthTestRouter(t)

	ping := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	t.Run("Rejects a missing token", func(t *testing.T) {
		recorder := ping("")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		var response map[string]string
		json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.Equal(t, "Unauthorized", response["error"])
	})

	t.Run("Rejects a garbage token", func(t *testing.T) {
		recorder := ping("Bearer not-a-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Accepts a freshly issued token", func(t *testing.T) {
		token, err := auth.IssueToken("root")
		assert.NoError(t, err)

		recorder := ping("Bearer " + token)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
