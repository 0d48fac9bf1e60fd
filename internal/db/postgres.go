package db

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/x07b/Houssem/internal/models"
)

var DB *gorm.DB

func Init() {

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Africa/Tunis",
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_USER", "test"),
		getEnv("POSTGRES_PASSWORD", "test"),
		getEnv("POSTGRES_DB", "test"),
		getEnv("DB_PORT", "5432"),
	)

	var err error

	// TranslateError so order-code collisions surface as gorm.ErrDuplicatedKey.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {

		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err = Migrate(DB); err != nil {

		log.Fatalf("Failed to migrate DB: %v", err)
	}

	if err = SeedDefaults(DB); err != nil {

		log.Fatalf("Failed to seed DB defaults: %v", err)
	}

	log.Println("Database connected and migrated successfully")
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Banner{},
		&models.Promo{},
		&models.HomeToggles{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
	)
}

// SeedDefaults makes sure the store always has the built-in "Softwares"
// category and a homepage-toggles row to merge updates into.
func SeedDefaults(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&models.Category{}).Where("slug = ?", "softwares").Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		cat := models.Category{ID: uuid.NewString(), Name: "Softwares", Slug: "softwares", Published: true}
		if err := gdb.Create(&cat).Error; err != nil {
			return err
		}
	}

	if err := gdb.Model(&models.HomeToggles{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		toggles := models.HomeToggles{ShowNewsletter: true, ShowPremium: true, ShowPromo: true}
		if err := gdb.Create(&toggles).Error; err != nil {
			return err
		}
	}

	return nil
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}

func getEnv(key, fallback string) string {

	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}
