package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Mawltheus/acaraje-manager/entity"
	"github.com/Mawltheus/acaraje-manager/pkg/apperr"
	"github.com/Mawltheus/acaraje-manager/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardService(repository.NewDashboardRepository(db), time.Local, nil)
}

type seededItem struct {
	name string
	qty  int
}

var seededOrderSeq int

func seedOrder(t *testing.T, db *gorm.DB, status entity.OrderStatus, createdAt time.Time, items ...seededItem) *entity.Order {
	t.Helper()
	seededOrderSeq++

	subtotal := 0.0
	rows := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		sub := 8.00 * float64(it.qty)
		subtotal += sub
		rows = append(rows, entity.OrderItem{Name: it.name, Price: 8.00, Quantity: it.qty, Subtotal: sub})
	}

	o := entity.Order{
		OrderNumber:   fmt.Sprintf("PED%04d", seededOrderSeq),
		CustomerName:  "Cliente",
		CustomerPhone: "71 90000-0000",
		PaymentMethod: "pix",
		Subtotal:      subtotal,
		Total:         subtotal,
		Status:        status,
		OrderDate:     createdAt,
		CreatedAt:     createdAt,
		Items:         rows,
	}
	require.NoError(t, db.Create(&o).Error)
	return &o
}

func TestStatsTodayExcludesCancelled(t *testing.T) {
	db := setupDB(t)
	svc := newDashboardService(db)
	now := time.Now()

	seedOrder(t, db, entity.StatusPending, now, seededItem{"Acarajé", 2})    // 16
	seedOrder(t, db, entity.StatusDelivered, now, seededItem{"Acarajé", 1})  // 8
	seedOrder(t, db, entity.StatusCancelled, now, seededItem{"Acarajé", 10}) // excluded
	// two days ago, outside today's window
	seedOrder(t, db, entity.StatusDelivered, now.AddDate(0, 0, -2), seededItem{"Acarajé", 1})

	stats := svc.Stats(context.Background(), now)

	assert.EqualValues(t, 2, stats.TodayStats.Orders)
	assert.InDelta(t, 24.00, stats.TodayStats.Revenue, 1e-9)
	assert.InDelta(t, 12.00, stats.TodayStats.AverageOrderValue, 1e-9)

	// cancelled orders stay in the historical count but never in revenue
	assert.EqualValues(t, 4, stats.GeneralStats.TotalOrders)
	assert.InDelta(t, 32.00, stats.GeneralStats.TotalRevenue, 1e-9)
	assert.EqualValues(t, 1, stats.GeneralStats.PendingOrders)
	assert.EqualValues(t, 0, stats.GeneralStats.PreparingOrders)
}

func TestStatsAverageGuardedWhenEmpty(t *testing.T) {
	db := setupDB(t)
	svc := newDashboardService(db)

	stats := svc.Stats(context.Background(), time.Now())

	assert.Zero(t, stats.TodayStats.Orders)
	assert.Zero(t, stats.TodayStats.Revenue)
	assert.Zero(t, stats.TodayStats.AverageOrderValue)
}

func TestStatsOrdersByStatusZeroFilled(t *testing.T) {
	db := setupDB(t)
	svc := newDashboardService(db)
	now := time.Now()

	seedOrder(t, db, entity.StatusPending, now, seededItem{"Acarajé", 1})
	seedOrder(t, db, entity.StatusPending, now, seededItem{"Acarajé", 1})
	seedOrder(t, db, entity.StatusDelivered, now, seededItem{"Acarajé", 1})

	stats := svc.Stats(context.Background(), now)

	require.Len(t, stats.OrdersByStatus, len(entity.AllOrderStatuses))
	assert.EqualValues(t, 2, stats.OrdersByStatus[entity.StatusPending])
	assert.EqualValues(t, 1, stats.OrdersByStatus[entity.StatusDelivered])
	assert.EqualValues(t, 0, stats.OrdersByStatus[entity.StatusConfirmed])
	assert.EqualValues(t, 0, stats.OrdersByStatus[entity.StatusPreparing])
	assert.EqualValues(t, 0, stats.OrdersByStatus[entity.StatusReady])
	assert.EqualValues(t, 0, stats.OrdersByStatus[entity.StatusCancelled])
}

func TestStatsTopItemsRankingAndTieBreak(t *testing.T) {
	db := setupDB(t)
	svc := newDashboardService(db)
	now := time.Now()

	seedOrder(t, db, entity.StatusDelivered, now, seededItem{"Cocada", 3})
	seedOrder(t, db, entity.StatusDelivered, now, seededItem{"Acarajé", 5})
	seedOrder(t, db, entity.StatusDelivered, now.AddDate(0, 0, -1), seededItem{"Abará", 5})
	// cancelled sales never count
	seedOrder(t, db, entity.StatusCancelled, now, seededItem{"Cocada", 50})
	// outside the 30-day window
	seedOrder(t, db, entity.StatusDelivered, now.AddDate(0, 0, -40), seededItem{"Cocada", 50})

	stats := svc.Stats(context.Background(), now)

	require.Len(t, stats.TopItems, 3)
	// quantity descending, name ascending on the 5/5 tie
	assert.Equal(t, "Abará", stats.TopItems[0].Name)
	assert.Equal(t, "Acarajé", stats.TopItems[1].Name)
	assert.Equal(t, "Cocada", stats.TopItems[2].Name)
	assert.EqualValues(t, 3, stats.TopItems[2].Quantity)
	assert.InDelta(t, 24.00, stats.TopItems[2].Revenue, 1e-9)
}

func TestStatsTopItemsCappedAtFive(t *testing.T) {
	db := setupDB(t)
	svc := newDashboardService(db)
	now := time.Now()

	for i := 0; i < 7; i++ {
		seedOrder(t, db, entity.StatusDelivered, now, seededItem{fmt.Sprintf("Item %d", i), i + 1})
	}

	stats := svc.Stats(context.Background(), now)
	assert.Len(t, stats.TopItems, 5)
	assert.Equal(t, "Item 6", stats.TopItems[0].Name)
}

func TestStatsRecentOrders(t *testing.T) {
	db := setupDB(t)
	svc := newDashboardService(db)
	now := time.Now()

	for i := 0; i < 12; i++ {
		seedOrder(t, db, entity.StatusPending, now.Add(-time.Duration(i)*time.Minute), seededItem{"Acarajé", 1})
	}
	seedOrder(t, db, entity.StatusPending, now.AddDate(0, 0, -1), seededItem{"Acarajé", 1})

	stats := svc.Stats(context.Background(), now)

	require.Len(t, stats.RecentOrders, 10)
	// newest first
	assert.True(t, stats.RecentOrders[0].CreatedAt.After(stats.RecentOrders[9].CreatedAt))
	for _, o := range stats.RecentOrders {
		assert.NotEmpty(t, o.OrderNumber)
		assert.NotEmpty(t, o.CustomerName)
	}
}

func TestCancellingDropsRevenueFromStats(t *testing.T) {
	db := setupDB(t)
	orderSvc := newOrderService(db)
	dashSvc := newDashboardService(db)
	ctx := context.Background()

	item := seedMenuItem(t, db, "Acarajé", 8.00)
	o, err := orderSvc.Create(ctx, &CreateOrderReq{
		CustomerName: "A", CustomerPhone: "1", PaymentMethod: "pix",
		Items: []OrderItemIn{{MenuItemID: item.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	before := dashSvc.Stats(ctx, time.Now())
	assert.InDelta(t, 16.00, before.GeneralStats.TotalRevenue, 1e-9)

	_, err = orderSvc.Cancel(ctx, o.ID)
	require.NoError(t, err)

	after := dashSvc.Stats(ctx, time.Now())
	assert.Zero(t, after.GeneralStats.TotalRevenue)
	assert.Zero(t, after.TodayStats.Revenue)
	assert.EqualValues(t, 1, after.OrdersByStatus[entity.StatusCancelled])
}

func TestSalesReport(t *testing.T) {
	db := setupDB(t)
	svc := newDashboardService(db)
	now := time.Now()

	seedOrder(t, db, entity.StatusDelivered, now, seededItem{"Acarajé", 1})
	seedOrder(t, db, entity.StatusDelivered, now, seededItem{"Acarajé", 2})
	seedOrder(t, db, entity.StatusDelivered, now.AddDate(0, 0, -1), seededItem{"Acarajé", 1})
	seedOrder(t, db, entity.StatusCancelled, now, seededItem{"Acarajé", 9})

	t.Run("by day", func(t *testing.T) {
		buckets, err := svc.SalesReport(context.Background(), nil, nil, "day")
		require.NoError(t, err)
		require.Len(t, buckets, 2)
		// ascending by period, cancelled excluded
		assert.EqualValues(t, 1, buckets[0].Orders)
		assert.EqualValues(t, 2, buckets[1].Orders)
		assert.InDelta(t, 24.00, buckets[1].Revenue, 1e-9)
	})

	t.Run("invalid groupBy", func(t *testing.T) {
		_, err := svc.SalesReport(context.Background(), nil, nil, "week")
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		start := now.AddDate(1, 0, 0)
		end := now.AddDate(1, 0, 1)
		buckets, err := svc.SalesReport(context.Background(), &start, &end, "day")
		require.NoError(t, err)
		assert.NotNil(t, buckets)
		assert.Empty(t, buckets)
	})
}

func emptyStats() *DashboardStats {
	return &DashboardStats{
		TopItems:       []repository.ItemSales{},
		OrdersByStatus: map[entity.OrderStatus]int64{},
		RecentOrders:   []repository.OrderSummary{},
	}
}

func TestStatsFlagsDegradedAggregates(t *testing.T) {
	db := setupDB(t)
	svc := newDashboardService(db)
	now := time.Now()

	seedOrder(t, db, entity.StatusPending, now, seededItem{"Acarajé", 1})

	out := emptyStats()
	assert.False(t, svc.fill(context.Background(), now, out))
	assert.EqualValues(t, 1, out.GeneralStats.TotalOrders)

	// breaking one aggregate zeroes it, flags the payload as degraded,
	// and leaves the healthy aggregates intact; Stats only caches
	// payloads fill reports as clean
	require.NoError(t, db.Migrator().DropTable("order_items"))

	out = emptyStats()
	assert.True(t, svc.fill(context.Background(), now, out))
	assert.Empty(t, out.TopItems)
	assert.EqualValues(t, 1, out.OrdersByStatus[entity.StatusPending])
	assert.EqualValues(t, 1, out.GeneralStats.TotalOrders)
}
