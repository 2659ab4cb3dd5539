package repository

import (
	"context"
	"time"

	"github.com/Mawltheus/acaraje-manager/entity"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

// CountAllOrders counts every order regardless of status. Cancelled
// orders stay in the historical count; only their revenue is excluded.
func (r *DashboardRepository) CountAllOrders(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).Count(&n).Error
	return n, err
}

// CountAndRevenue aggregates non-cancelled orders, optionally bounded
// to [from, to).
func (r *DashboardRepository) CountAndRevenue(ctx context.Context, from, to *time.Time) (int64, float64, error) {
	var row struct {
		Orders  int64
		Revenue float64
	}
	q := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue").
		Where("status <> ?", entity.StatusCancelled)
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}
	err := q.Scan(&row).Error
	return row.Orders, row.Revenue, err
}

func (r *DashboardRepository) StatusCounts(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status entity.OrderStatus
		Count  int64
	}
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// TopItems ranks the captured (snapshot) item names of non-cancelled
// orders created since the given instant: quantity descending, name
// ascending on ties.
func (r *DashboardRepository) TopItems(ctx context.Context, since time.Time, limit int) ([]ItemSales, error) {
	var out []ItemSales
	err := r.DB.WithContext(ctx).
		Table("order_items AS oi").
		Select("oi.name, SUM(oi.quantity) AS quantity, SUM(oi.subtotal) AS revenue").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.status <> ? AND o.created_at >= ?", entity.StatusCancelled, since).
		Group("oi.name").
		Order("quantity DESC, oi.name ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

type OrderSummary struct {
	ID           uint               `json:"id"`
	OrderNumber  string             `json:"orderNumber"`
	CustomerName string             `json:"customerName"`
	Total        float64            `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *DashboardRepository) RecentOrders(ctx context.Context, from, to time.Time, limit int) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("id, order_number, customer_name, total, status, created_at").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

type SalesBucket struct {
	Period  string  `json:"period"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// SalesReport buckets non-cancelled orders by day or month over the
// half-open window [start, end).
func (r *DashboardRepository) SalesReport(ctx context.Context, start, end *time.Time, groupBy string) ([]SalesBucket, error) {
	format := "%Y-%m-%d"
	if groupBy == "month" {
		format = "%Y-%m"
	}

	q := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("strftime(?, created_at) AS period, COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue", format).
		Where("status <> ?", entity.StatusCancelled)
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at < ?", *end)
	}

	var out []SalesBucket
	err := q.Group("period").Order("period ASC").Scan(&out).Error
	return out, err
}
