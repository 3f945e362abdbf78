package services

import (
	"errors"

	"rangi/internal/db"
	"rangi/internal/models"

	"gorm.io/gorm"
)

// ListCategories returns every category in sidebar order.
func ListCategories() ([]models.Category, error) {
	var cats []models.Category
	if err := db.DB.Order("ord ASC, id ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateCategory adds a category. A duplicate name is reported as
// ErrConflict and the write is skipped.
func CreateCategory(name string, order int) error {
	taken, err := categoryNameTaken(name, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	return db.DB.Create(&models.Category{Name: name, Order: order}).Error
}

// UpdateCategory renames or reorders a category, with the same
// duplicate-name rule as CreateCategory.
func UpdateCategory(id uint, name string, order int) error {
	var cat models.Category
	if err := db.DB.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	taken, err := categoryNameTaken(name, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	return db.DB.Model(&cat).Updates(map[string]interface{}{
		"name": name,
		"ord":  order,
	}).Error
}

// DeleteCategory removes a category and every post filed under it,
// comments and hashtags included. When the last category goes, the
// default one is recreated so new posts always have a home.
func DeleteCategory(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var cat models.Category
		if err := tx.First(&cat, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var posts []models.Post
		if err := tx.Where("category_id = ?", id).Find(&posts).Error; err != nil {
			return err
		}
		for _, post := range posts {
			if err := deletePostTx(tx, post.ID); err != nil {
				return err
			}
		}
		if err := tx.Delete(&cat).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return tx.Create(&models.Category{Name: models.DefaultCategoryName}).Error
		}
		return nil
	})
}

func categoryNameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	q := db.DB.Model(&models.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
