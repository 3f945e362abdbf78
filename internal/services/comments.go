package services

import (
	"errors"

	"rangi/internal/db"
	"rangi/internal/models"

	"gorm.io/gorm"
)

// ErrCommentsDisabled is returned when a comment is submitted against a
// post that does not accept them, either per-post or blog-wide.
var ErrCommentsDisabled = errors.New("comments are disabled")

// CreateComment stores a reader comment and bumps the post's comment
// counter in one transaction. autoApprove decides whether the comment
// is visible immediately or waits for moderation.
func CreateComment(comment *models.Comment, autoApprove bool) error {
	if comment.Datetime == "" {
		comment.Datetime = Now()
	}
	comment.Status = models.CommentNew
	if autoApprove {
		comment.Status = models.CommentAutoApproved
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, comment.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if post.CommentsDisabled() {
			return ErrCommentsDisabled
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&post).
			UpdateColumn("comments", gorm.Expr("comments + 1")).Error
	})
}

// ListComments returns a post's comments oldest first. Readers only get
// the approved ones; the admin sees everything.
func ListComments(postID uint, admin bool) ([]models.Comment, error) {
	q := db.DB.Where("post_id = ?", postID).Order("id ASC")
	if !admin {
		q = q.Where("status >= ?", models.CommentAutoApproved)
	}
	var comments []models.Comment
	if err := q.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// MarkCommentsSeen flips a post's fresh comments from new to seen, so
// the moderation queue can tell first-time listings apart. Called when
// the admin opens a comment thread.
func MarkCommentsSeen(postID uint) error {
	return db.DB.Model(&models.Comment{}).
		Where("post_id = ? AND status = ?", postID, models.CommentNew).
		UpdateColumn("status", models.CommentSeen).Error
}

// ApproveComment publishes a moderated comment.
func ApproveComment(id uint) error {
	res := db.DB.Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("status", models.CommentApproved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteComment removes a comment and gives the post its counter point
// back, in one transaction.
func DeleteComment(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ? AND comments > 0", comment.PostID).
			UpdateColumn("comments", gorm.Expr("comments - 1")).Error
	})
}

// PendingComments lists every comment still waiting for moderation,
// newest first, for the moderation overview.
func PendingComments() ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("Post").
		Where("status < ?", models.CommentAutoApproved).
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
