package models

// Tag is one row of the hashtag index. Frequency counts the posts whose
// content currently carries the keyword; a tag whose frequency would drop
// to zero is deleted instead, so Frequency >= 1 holds for every stored
// row. Popularity counts reader clicks and survives across edits.
type Tag struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Keyword    string `gorm:"not null;uniqueIndex" json:"keyword"`
	Frequency  int    `gorm:"default:1" json:"frequency"`
	Popularity int    `gorm:"default:0" json:"popularity"`
}
