package models

// Comment moderation states. Readers only ever see approved comments;
// the two approved states are kept apart so the admin can tell which
// ones went through moderation.
const (
	CommentNew          = 0 // submitted, not yet seen by the admin
	CommentSeen         = 1 // listed once on the admin's comment view
	CommentAutoApproved = 2 // published immediately (auto-approval on)
	CommentApproved     = 3 // published by an explicit admin action
)

type Comment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PostID    uint   `gorm:"not null;index" json:"post_id"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Datetime  string `gorm:"size:19;not null" json:"datetime"`
	Name      string `json:"name"`
	Website   string `json:"website"`
	EmailAddr string `json:"email_addr"`
	Status    int    `gorm:"default:0;index" json:"status"`
}

func (c Comment) Visible() bool {
	return c.Status >= CommentAutoApproved
}
