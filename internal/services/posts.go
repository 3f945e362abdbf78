package services

import (
	"errors"
	"fmt"
	"time"

	"rangi/internal/db"
	"rangi/internal/models"

	"gorm.io/gorm"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Sort keys accepted by FindPosts.
const (
	SortDateAsc      = "ascdate"
	SortDateDesc     = "descdate"
	SortCommentsAsc  = "asccomments"
	SortCommentsDesc = "desccomments"
)

// Now returns the current time in the storage timestamp form.
func Now() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// PostFilter narrows a feed query. Zero values mean "no filter".
type PostFilter struct {
	CategoryID uint
	Tag        string
	Search     string
	Sort       string
}

// CreatePost stores a post and indexes its hashtags in one transaction.
func CreatePost(post *models.Post) error {
	if post.Datetime == "" {
		post.Datetime = Now()
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return RegisterTags(tx, post.Content)
	})
}

// UpdatePost rewrites a post's editable fields. The hashtag index is
// kept consistent by releasing the old body's keywords and registering
// the new body's, all inside one transaction, so a keyword kept across
// the edit nets out to no frequency change and a crash can not leave
// the index half-updated.
func UpdatePost(id uint, title, content, mediaAddr string, categoryID uint, flags int) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := ReleaseTags(tx, post.Content); err != nil {
			return err
		}
		updates := map[string]interface{}{
			"title":       title,
			"content":     content,
			"media_addr":  mediaAddr,
			"category_id": categoryID,
			"flags":       flags,
		}
		if err := tx.Model(&post).Updates(updates).Error; err != nil {
			return err
		}
		return RegisterTags(tx, content)
	})
}

// DeletePost removes a post with everything hanging off it: its
// comments go first, then its hashtags give back their frequency
// points, then the row itself.
func DeletePost(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return deletePostTx(tx, id)
	})
}

func deletePostTx(tx *gorm.DB, id uint) error {
	var post models.Post
	if err := tx.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := ReleaseTags(tx, post.Content); err != nil {
		return err
	}
	return tx.Delete(&post).Error
}

// GetPost loads a single post by id.
func GetPost(id uint) (*models.Post, error) {
	var post models.Post
	if err := db.DB.Preload("Category").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindPosts returns one feed page. Pinned posts always sort ahead of
// the rest, whatever the requested sort key.
func FindPosts(f PostFilter, offset, limit int) ([]models.Post, error) {
	q := db.DB.Model(&models.Post{}).Preload("Category")

	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Tag != "" {
		q = q.Where("content LIKE ?", "%#"+f.Tag+"%")
	}
	if f.Search != "" {
		pat := "%" + f.Search + "%"
		q = q.Where("content LIKE ? OR title LIKE ?", pat, pat)
	}

	q = q.Order(fmt.Sprintf("flags & %d DESC", models.FlagPinned))
	switch f.Sort {
	case SortDateAsc:
		q = q.Order("id ASC")
	case SortCommentsAsc:
		q = q.Order("comments ASC, id DESC")
	case SortCommentsDesc:
		q = q.Order("comments DESC, id DESC")
	default: // newest first
		q = q.Order("id DESC")
	}

	var posts []models.Post
	if err := q.Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
