package entity

type OrderItem struct {
	ID      uint  `gorm:"primarykey" json:"id"`
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	// snapshot do cardápio no momento do pedido
	Name  string  `json:"name"`
	Price float64 `json:"price"`

	Quantity int `json:"quantity"`

	Ingredients []IngredientSelection `gorm:"serializer:json" json:"ingredients"`

	Subtotal float64 `json:"subtotal"`
}

// IngredientSelection is the per-item snapshot of which ingredients the
// customer kept or removed. Captured by name so later ingredient edits
// never rewrite order history.
type IngredientSelection struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}
