package entity

import (
	"time"
)

type MenuItem struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    MenuCategory `gorm:"index" json:"category"`
	Price       float64      `json:"price"`
	Image       string       `json:"image"`
	Available   bool         `gorm:"default:true" json:"available"`

	// em minutos
	PreparationTime int `gorm:"default:15" json:"preparationTime"`

	Ingredients []Ingredient `gorm:"many2many:menu_item_ingredients;" json:"ingredients"`

	OrderItems []OrderItem `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
