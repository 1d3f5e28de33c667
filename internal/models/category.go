package models

import "gorm.io/gorm"

// Category represents a product category. Categories form a tree via
// ParentCategoryID; root categories have a nil parent.
type Category struct {
	ID               string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name             string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Description      string  `json:"description" validate:"omitempty,max=500"`
	ParentCategoryID *string `json:"parent_category_id" gorm:"type:varchar(36);index" validate:"omitempty,uuid"`
	gorm.Model
}
