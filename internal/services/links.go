package services

import (
	"errors"

	"rangi/internal/db"
	"rangi/internal/models"

	"gorm.io/gorm"
)

// ListLinks returns the blogroll in sidebar order.
func ListLinks() ([]models.Link, error) {
	var links []models.Link
	if err := db.DB.Order("ord ASC, id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// CreateLink adds a blogroll entry. Both name and address must be
// unused; a duplicate of either is reported as ErrConflict and the
// write is skipped.
func CreateLink(name, address string, order int) error {
	taken, err := linkTaken(name, address, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	return db.DB.Create(&models.Link{Name: name, Address: address, Order: order}).Error
}

// UpdateLink edits a blogroll entry under the same uniqueness rule.
func UpdateLink(id uint, name, address string, order int) error {
	var link models.Link
	if err := db.DB.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	taken, err := linkTaken(name, address, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	return db.DB.Model(&link).Updates(map[string]interface{}{
		"name":    name,
		"address": address,
		"ord":     order,
	}).Error
}

// DeleteLink removes a blogroll entry.
func DeleteLink(id uint) error {
	res := db.DB.Delete(&models.Link{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func linkTaken(name, address string, excludeID uint) (bool, error) {
	var count int64
	q := db.DB.Model(&models.Link{}).
		Where("name = ? OR address = ?", name, address)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
