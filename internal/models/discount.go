package models

import (
	"time"

	"gorm.io/gorm"
)

// Discount represents a percentage discount code with a validity window.
type Discount struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Code        string    `json:"code" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=3,max=50"`
	Percentage  float64   `json:"percentage" validate:"required,gte=0,lte=100"`
	ValidFrom   time.Time `json:"valid_from" validate:"required"`
	ValidTo     time.Time `json:"valid_to" validate:"required"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	gorm.Model
}

// ValidAt reports whether the discount's window covers the given time.
func (d *Discount) ValidAt(t time.Time) bool {
	return !d.ValidFrom.After(t) && !d.ValidTo.Before(t)
}
