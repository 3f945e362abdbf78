package models

// Post flag bits, packed in a single column so the feed query can order
// on them directly.
const (
	FlagCommentsDisabled = 1 << 0
	FlagPinned           = 1 << 1
)

type Post struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	Title      string   `json:"title"`
	Content    string   `gorm:"type:text;not null" json:"content"`
	// Datetime is kept as "YYYY-MM-DD HH:MM:SS" text so the display
	// formatter can re-parse it field by field.
	Datetime  string `gorm:"size:19;not null" json:"datetime"`
	Comments  int    `gorm:"default:0" json:"comments"`
	MediaAddr string `json:"media_addr"`
	Flags     int    `gorm:"default:0" json:"flags"`
}

func (p Post) CommentsDisabled() bool {
	return p.Flags&FlagCommentsDisabled != 0
}

func (p Post) Pinned() bool {
	return p.Flags&FlagPinned != 0
}
