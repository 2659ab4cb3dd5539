package entity

import (
	"time"
)

type Ingredient struct {
	ID          uint               `gorm:"primarykey" json:"id"`
	Name        string             `gorm:"uniqueIndex" json:"name"`
	Description string             `json:"description"`
	Category    IngredientCategory `gorm:"default:outro" json:"category"`
	Price       float64            `json:"price"`
	Available   bool               `gorm:"default:true" json:"available"`

	MenuItems []MenuItem `gorm:"many2many:menu_item_ingredients;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
