package entity

import (
	"time"
)

type Order struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex" json:"orderNumber"`

	CustomerName         string `json:"customerName"`
	CustomerPhone        string `json:"customerPhone"`
	CustomerAddress      string `json:"customerAddress"`
	CustomerNeighborhood string `json:"customerNeighborhood"`
	CustomerComplement   string `json:"customerComplement"`

	PaymentMethod string   `json:"paymentMethod"`
	PaymentChange *float64 `json:"paymentChange"`

	DeliveryAreaID *uint         `json:"deliveryAreaId"`
	DeliveryArea   *DeliveryArea `json:"deliveryArea,omitempty"`

	DeliveryFee float64 `json:"deliveryFee"`
	Subtotal    float64 `json:"subtotal"`
	Total       float64 `json:"total"`

	Status OrderStatus `gorm:"index;default:pending" json:"status"`
	Notes  string      `json:"notes"`

	OrderDate time.Time `json:"orderDate"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
