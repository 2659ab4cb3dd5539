package entity

import (
	"time"
)

type DeliveryArea struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"uniqueIndex" json:"name"`
	Description string  `json:"description"`
	Fee         float64 `json:"fee"`

	// em minutos
	EstimatedTime int `gorm:"default:30" json:"estimatedTime"`

	Active bool `gorm:"default:true" json:"active"`

	Orders []Order `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
