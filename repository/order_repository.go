package repository

import (
	"context"
	"time"

	"github.com/Mawltheus/acaraje-manager/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) GetCounter(tx *gorm.DB) (*entity.OrderCounter, error) {
	var counter entity.OrderCounter
	if err := tx.First(&counter, 1).Error; err != nil {
		return nil, err
	}
	return &counter, nil
}

// AdvanceCounter claims the next order number with a compare-and-swap
// on the counter row. Zero rows affected means another creation won the
// race; the whole transaction must then roll back and retry.
func (r *OrderRepository) AdvanceCounter(tx *gorm.DB, from, to string) (int64, error) {
	res := tx.Model(&entity.OrderCounter{}).
		Where("id = ? AND last_number = ?", 1, from).
		Update("last_number", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) DeleteOrderItems(tx *gorm.DB, orderID uint) error {
	return tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}

func (r *OrderRepository) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("DeliveryArea").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderFilter struct {
	Status entity.OrderStatus
	Date   *time.Time // start of the requested day, business timezone
	Page   int
	Limit  int
}

func (r *OrderRepository) ListOrders(ctx context.Context, f OrderFilter) ([]entity.Order, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 20
	}

	q := r.DB.WithContext(ctx).Model(&entity.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Date != nil {
		q = q.Where("created_at >= ? AND created_at < ?", *f.Date, f.Date.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Preload("Items").
		Preload("DeliveryArea").
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) UpdateOrder(tx *gorm.DB, id uint, fields map[string]any) (int64, error) {
	res := tx.Model(&entity.Order{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

// UpdateStatusGuard flips the status only when the order still holds
// the expected current value; zero rows affected means a concurrent
// writer got there first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
