package db

import (
	"log"
	"os"

	"rangi/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "blog.db"
	}
	Open(path)
}

// Open connects to the given sqlite database, migrates the schema and
// seeds the default category. Tests call it directly with ":memory:".
func Open(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", path, err)
	}

	err = DB.AutoMigrate(
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.Tag{},
		&models.Link{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seedCategories()
}

// seedCategories makes sure there is always at least one category to
// file posts under.
func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}
	if err := DB.Create(&models.Category{Name: models.DefaultCategoryName}).Error; err != nil {
		log.Printf("Failed to create default category: %v", err)
	}
}
