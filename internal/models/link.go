package models

// Link is one entry of the blogroll sidebar. Both the display name and
// the address are unique; attempts to duplicate either are rejected with
// a warning rather than an error page.
type Link struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null;uniqueIndex" json:"name"`
	Address string `gorm:"not null;uniqueIndex" json:"address"`
	Order   int    `gorm:"column:ord;default:0" json:"order"`
}
