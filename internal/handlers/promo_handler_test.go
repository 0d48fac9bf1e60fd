package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/x07b/Houssem/internal/handlers"
	"github.com/x07b/Houssem/internal/models"
)

func setupPromoTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB := newTestDB(t)

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/promo/:code", handlers.ValidatePromo)
		api.GET("/admin/promos", handlers.ListPromos)
		api.POST("/admin/promos", handlers.UpsertPromo)
		api.DELETE("/admin/promos/:id", handlers.DeletePromo)
	}

	return r, testDB
}

type promoResult struct {
	Found   bool    `json:"found"`
	Active  bool    `json:"active"`
	Percent float64 `json:"percent"`
	Code    string  `json:"code"`
}

func TestValidatePromoHandler(t *testing.T) {

	router, testDB := setupPromoTestRouter(t)

	testDB.Create(&models.Promo{ID: "SAVE20", Percent: 20, Active: true})
	testDB.Create(&models.Promo{ID: "EXPIRED10", Percent: 10, Active: false})

	t.Run("Validation is case-insensitive", func(t *testing.T) {
		lower := perform(router, jsonRequest(http.MethodGet, "/api/promo/save20", nil))
		upper := perform(router, jsonRequest(http.MethodGet, "/api/promo/SAVE20", nil))

		assert.Equal(t, http.StatusOK, lower.Code)
		assert.Equal(t, http.StatusOK, upper.Code)
		assert.JSONEq(t, upper.Body.String(), lower.Body.String())

		var result promoResult
		err := json.Unmarshal(lower.Body.Bytes(), &result)
		assert.NoError(t, err)
		assert.True(t, result.Found)
		assert.True(t, result.Active)
		assert.Equal(t, float64(20), result.Percent)
		assert.Equal(t, "SAVE20", result.Code)
	})

	t.Run("Reports an inactive promo as found but inactive", func(t *testing.T) {
		recorder := perform(router, jsonRequest(http.MethodGet, "/api/promo/expired10", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var result promoResult
		json.Unmarshal(recorder.Body.Bytes(), &result)
		assert.True(t, result.Found)
		assert.False(t, result.Active)
		assert.Equal(t, float64(10), result.Percent)
	})

	t.Run("Reports an unknown code as not found", func(t *testing.T) {
		recorder := perform(router, jsonRequest(http.MethodGet, "/api/promo/NOPE", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var result promoResult
		json.Unmarshal(recorder.Body.Bytes(), &result)
		assert.False(t, result.Found)
		assert.False(t, result.Active)
		assert.Equal(t, float64(0), result.Percent)
	})
}

func TestPromoAdminHandlers(t *testing.T) {

	router, testDB := setupPromoTestRouter(t)

	t.Run("Upsert stores the code uppercase", func(t *testing.T) {
		reqBody := map[string]interface{}{"id": "summer15", "percent": 15, "active": true}
		recorder := perform(router, jsonRequest(http.MethodPost, "/api/admin/promos", reqBody))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var stored models.Promo
		assert.NoError(t, testDB.First(&stored, "id = ?", "SUMMER15").Error)
		assert.Equal(t, float64(15), stored.Percent)
		assert.True(t, stored.Active)
	})

	t.Run("Upsert replaces an existing promo", func(t *testing.T) {
		reqBody := map[string]interface{}{"id": "SUMMER15", "percent": 25, "active": false}
		recorder := perform(router, jsonRequest(http.MethodPost, "/api/admin/promos", reqBody))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var count int64
		testDB.Model(&models.Promo{}).Count(&count)
		assert.Equal(t, int64(1), count)

		var stored models.Promo
		testDB.First(&stored, "id = ?", "SUMMER15")
		assert.Equal(t, float64(25), stored.Percent)
		assert.False(t, stored.Active)
	})

	t.Run("Rejects a percent above 100", func(t *testing.T) {
		reqBody := map[string]interface{}{"id": "TOOBIG", "percent": 150, "active": true}
		recorder := perform(router, jsonRequest(http.MethodPost, "/api/admin/promos", reqBody))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Deletes a promo", func(t *testing.T) {
		recorder := perform(router, jsonRequest(http.MethodDelete, "/api/admin/promos/summer15", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var count int64
		testDB.Model(&models.Promo{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}
