package entity

// OrderCounter is a single-row table holding the last issued order
// number. Advanced by compare-and-swap inside the order-creation
// transaction so two concurrent creations can never claim the same
// next number.
type OrderCounter struct {
	ID         uint   `gorm:"primarykey"`
	LastNumber string `gorm:"size:16"`
}
