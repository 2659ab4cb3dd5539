package services

import (
	"context"
	"log"
	"time"

	"github.com/Mawltheus/acaraje-manager/entity"
	"github.com/Mawltheus/acaraje-manager/pkg/apperr"
	"github.com/Mawltheus/acaraje-manager/pkg/cache"
	"github.com/Mawltheus/acaraje-manager/repository"
)

type DashboardService struct {
	Repo  *repository.DashboardRepository
	Loc   *time.Location
	Cache *cache.DashboardCache
}

func NewDashboardService(repo *repository.DashboardRepository, loc *time.Location, statsCache *cache.DashboardCache) *DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{Repo: repo, Loc: loc, Cache: statsCache}
}

type TodayStats struct {
	Orders            int64   `json:"orders"`
	Revenue           float64 `json:"revenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type GeneralStats struct {
	TotalOrders     int64   `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingOrders   int64   `json:"pendingOrders"`
	PreparingOrders int64   `json:"preparingOrders"`
}

type DashboardStats struct {
	TodayStats     TodayStats                   `json:"todayStats"`
	GeneralStats   GeneralStats                 `json:"generalStats"`
	TopItems       []repository.ItemSales       `json:"topItems"`
	OrdersByStatus map[entity.OrderStatus]int64 `json:"ordersByStatus"`
	RecentOrders   []repository.OrderSummary    `json:"recentOrders"`
}

const (
	topItemsWindowDays = 30
	topItemsLimit      = 5
	recentOrdersLimit  = 10
)

// Stats computes the dashboard payload as of the given instant. A
// failing sub-aggregate is logged and zeroed, never failing the whole
// dashboard.
func (s *DashboardService) Stats(ctx context.Context, asOf time.Time) *DashboardStats {
	out := &DashboardStats{
		TopItems:       []repository.ItemSales{},
		OrdersByStatus: map[entity.OrderStatus]int64{},
		RecentOrders:   []repository.OrderSummary{},
	}

	if hit, err := s.Cache.Get(ctx, out); err != nil {
		log.Println("dashboard cache read failed:", err)
	} else if hit {
		return out
	}

	degraded := s.fill(ctx, asOf, out)

	// a payload with zeroed sub-aggregates must not outlive the store
	// hiccup that produced it
	if !degraded {
		if err := s.Cache.Set(ctx, out); err != nil {
			log.Println("dashboard cache write failed:", err)
		}
	}
	return out
}

func (s *DashboardService) fill(ctx context.Context, asOf time.Time, out *DashboardStats) (degraded bool) {
	dayStart := startOfDay(asOf.In(s.Loc))
	dayEnd := dayStart.AddDate(0, 0, 1)

	if orders, revenue, err := s.Repo.CountAndRevenue(ctx, &dayStart, &dayEnd); err != nil {
		log.Println("dashboard: today stats failed:", err)
		degraded = true
	} else {
		out.TodayStats = TodayStats{Orders: orders, Revenue: revenue}
		if orders > 0 {
			out.TodayStats.AverageOrderValue = revenue / float64(orders)
		}
	}

	counts, err := s.Repo.StatusCounts(ctx)
	if err != nil {
		log.Println("dashboard: status counts failed:", err)
		degraded = true
		counts = map[entity.OrderStatus]int64{}
	}
	for _, st := range entity.AllOrderStatuses {
		out.OrdersByStatus[st] = counts[st]
	}
	out.GeneralStats.PendingOrders = counts[entity.StatusPending]
	out.GeneralStats.PreparingOrders = counts[entity.StatusPreparing]

	// cancelled orders stay in the historical count but never in revenue
	if total, err := s.Repo.CountAllOrders(ctx); err != nil {
		log.Println("dashboard: general stats failed:", err)
		degraded = true
	} else {
		out.GeneralStats.TotalOrders = total
	}
	if _, revenue, err := s.Repo.CountAndRevenue(ctx, nil, nil); err != nil {
		log.Println("dashboard: general revenue failed:", err)
		degraded = true
	} else {
		out.GeneralStats.TotalRevenue = revenue
	}

	since := asOf.In(s.Loc).AddDate(0, 0, -topItemsWindowDays)
	if top, err := s.Repo.TopItems(ctx, since, topItemsLimit); err != nil {
		log.Println("dashboard: top items failed:", err)
		degraded = true
	} else if top != nil {
		out.TopItems = top
	}

	if recent, err := s.Repo.RecentOrders(ctx, dayStart, dayEnd, recentOrdersLimit); err != nil {
		log.Println("dashboard: recent orders failed:", err)
		degraded = true
	} else if recent != nil {
		out.RecentOrders = recent
	}
	return degraded
}

func (s *DashboardService) SalesReport(ctx context.Context, start, end *time.Time, groupBy string) ([]repository.SalesBucket, error) {
	if groupBy == "" {
		groupBy = "day"
	}
	if groupBy != "day" && groupBy != "month" {
		return nil, apperr.Validation("groupBy must be day or month")
	}
	buckets, err := s.Repo.SalesReport(ctx, start, end, groupBy)
	if err != nil {
		return nil, apperr.Store("building sales report", err)
	}
	if buckets == nil {
		buckets = []repository.SalesBucket{}
	}
	return buckets, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
