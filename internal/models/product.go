package models

import "gorm.io/gorm"

// Product represents a product in the store. Stock is only mutated through
// the order service entry points (decrement on order, restore on cancel).
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Brand       string  `json:"brand" validate:"omitempty,max=100"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
	CategoryID  *string `json:"category_id" gorm:"type:varchar(36);index" validate:"omitempty,uuid"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductStats is an aggregate projection over the catalog. Price aggregates
// are zero for an empty catalog.
type ProductStats struct {
	TotalCount          int64            `json:"total_count"`
	ActiveCount         int64            `json:"active_count"`
	InactiveCount       int64            `json:"inactive_count"`
	MinimumPrice        float64          `json:"minimum_price"`
	MaximumPrice        float64          `json:"maximum_price"`
	AveragePrice        float64          `json:"average_price"`
	TotalInventoryValue float64          `json:"total_inventory_value"`
	CountByBrand        map[string]int64 `json:"count_by_brand"`
}
