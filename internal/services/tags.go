package services

import (
	"errors"
	"time"

	"rangi/internal/db"
	"rangi/internal/models"
	"rangi/internal/utils"

	"gorm.io/gorm"
)

const tagCacheTTL = time.Minute

// RegisterTags indexes every distinct hashtag of content: existing
// keywords gain one frequency point, new ones start at frequency 1 and
// popularity 0. Runs inside the caller's transaction so a failed post
// write never leaves half an index update behind.
func RegisterTags(tx *gorm.DB, content string) error {
	for _, keyword := range utils.ExtractHashtags(content) {
		var tag models.Tag
		err := tx.Where("keyword = ?", keyword).First(&tag).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			tag = models.Tag{Keyword: keyword, Frequency: 1}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&tag).Update("frequency", tag.Frequency+1).Error; err != nil {
				return err
			}
		}
	}
	invalidateTagCache()
	return nil
}

// ReleaseTags is the inverse of RegisterTags: each distinct keyword of
// content gives back one frequency point, and a tag that would reach
// zero is removed outright. Popularity is deliberately lost with the
// record; a keyword that disappears from the blog starts over.
func ReleaseTags(tx *gorm.DB, content string) error {
	for _, keyword := range utils.ExtractHashtags(content) {
		var tag models.Tag
		err := tx.Where("keyword = ?", keyword).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if tag.Frequency > 1 {
			err = tx.Model(&tag).Update("frequency", tag.Frequency-1).Error
		} else {
			err = tx.Delete(&tag).Error
		}
		if err != nil {
			return err
		}
	}
	invalidateTagCache()
	return nil
}

// BumpPopularity counts one reader click on a tag filter. A keyword
// that is not in the index (stale link, hand-typed URL) is ignored.
func BumpPopularity(keyword string) {
	db.DB.Model(&models.Tag{}).
		Where("keyword = ?", keyword).
		UpdateColumn("popularity", gorm.Expr("popularity + 1"))
	utils.GetCache().Delete("tags:popular")
}

// TopByFrequency returns the n most used tags for the sidebar.
func TopByFrequency(n int) []models.Tag {
	return topTags("tags:frequent", "frequency DESC, keyword ASC", n)
}

// TopByPopularity returns the n most clicked tags for the sidebar.
func TopByPopularity(n int) []models.Tag {
	return topTags("tags:popular", "popularity DESC, keyword ASC", n)
}

func topTags(cacheKey, order string, n int) []models.Tag {
	cache := utils.GetCache()
	if cached := cache.Get(cacheKey); cached != nil {
		if tags, ok := cached.([]models.Tag); ok {
			return tags
		}
	}
	var tags []models.Tag
	if err := db.DB.Order(order).Limit(n).Find(&tags).Error; err != nil {
		return nil
	}
	cache.Set(cacheKey, tags, tagCacheTTL)
	return tags
}

func invalidateTagCache() {
	cache := utils.GetCache()
	cache.Delete("tags:frequent")
	cache.Delete("tags:popular")
}
