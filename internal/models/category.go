package models

// DefaultCategoryName is recreated whenever the last category is removed,
// posts always belong to a category.
const DefaultCategoryName = "Other"

type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null;uniqueIndex" json:"name"`
	Order int    `gorm:"column:ord;default:0" json:"order"`
}
