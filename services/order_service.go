package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Mawltheus/acaraje-manager/entity"
	"github.com/Mawltheus/acaraje-manager/pkg/apperr"
	"github.com/Mawltheus/acaraje-manager/pkg/cache"
	"github.com/Mawltheus/acaraje-manager/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	AreaRepo *repository.DeliveryAreaRepository
	Cache    *cache.DashboardCache
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	areaRepo *repository.DeliveryAreaRepository,
	statsCache *cache.DashboardCache,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, AreaRepo: areaRepo, Cache: statsCache}
}

// ----- DTOs from Controller -----

type IngredientSelectionIn struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

type OrderItemIn struct {
	MenuItemID  uint                    `json:"menuItemId" binding:"required"`
	Quantity    int                     `json:"quantity" binding:"required,min=1"`
	Ingredients []IngredientSelectionIn `json:"ingredients"`
}

type CreateOrderReq struct {
	CustomerName         string        `json:"customerName" binding:"required"`
	CustomerPhone        string        `json:"customerPhone" binding:"required"`
	CustomerAddress      string        `json:"customerAddress"`
	CustomerNeighborhood string        `json:"customerNeighborhood"`
	CustomerComplement   string        `json:"customerComplement"`
	PaymentMethod        string        `json:"paymentMethod" binding:"required"`
	PaymentChange        *float64      `json:"paymentChange"`
	DeliveryAreaID       *uint         `json:"deliveryAreaId"`
	Notes                string        `json:"notes"`
	Items                []OrderItemIn `json:"items" binding:"required,min=1"`
}

type priced struct {
	menuItemID  uint
	name        string
	unitPrice   float64
	quantity    int
	ingredients []entity.IngredientSelection
}

// round2 keeps the money fields at two decimal places so the
// total == subtotal + fee invariant survives float accumulation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Create prices every line from the referenced menu item (the client's
// price is never trusted), assigns the next order number under the
// counter lock, and writes the order with its items atomically.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validation("items is required")
	}

	rows := make([]priced, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, apperr.Validation("item quantity must be at least 1")
		}
		m, err := s.MenuRepo.FindBasics(ctx, it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("menu item")
			}
			return nil, apperr.Store("resolving menu item", err)
		}
		sels := make([]entity.IngredientSelection, 0, len(it.Ingredients))
		for _, sel := range it.Ingredients {
			sels = append(sels, entity.IngredientSelection{Name: sel.Name, Selected: sel.Selected})
		}
		rows = append(rows, priced{
			menuItemID:  m.ID,
			name:        m.Name,
			unitPrice:   m.Price,
			quantity:    it.Quantity,
			ingredients: sels,
		})
	}

	deliveryFee := 0.0
	if req.DeliveryAreaID != nil {
		area, err := s.AreaRepo.FindByID(ctx, *req.DeliveryAreaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("delivery area")
			}
			return nil, apperr.Store("resolving delivery area", err)
		}
		deliveryFee = area.Fee
	}

	subtotal := 0.0
	for _, r := range rows {
		subtotal += r.unitPrice * float64(r.quantity)
	}
	subtotal = round2(subtotal)
	total := round2(subtotal + deliveryFee)

	orderID, err := s.createWithSequence(ctx, req, rows, deliveryFee, subtotal, total)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return s.Get(ctx, orderID)
}

// createWithSequence claims the next order number and writes the order
// atomically. The number claim is a compare-and-swap on the counter
// row, so a lost race rolls the whole transaction back; a couple of
// retries absorb benign contention without ever reusing a number.
func (s *OrderService) createWithSequence(ctx context.Context, req *CreateOrderReq, rows []priced, deliveryFee, subtotal, total float64) (uint, error) {
	var orderID uint
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		orderID, err = s.tryCreate(ctx, req, rows, deliveryFee, subtotal, total)
		if !apperr.IsConflict(err) {
			break
		}
	}
	return orderID, err
}

func (s *OrderService) tryCreate(ctx context.Context, req *CreateOrderReq, rows []priced, deliveryFee, subtotal, total float64) (uint, error) {
	var orderID uint
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counter, err := s.Repo.GetCounter(tx)
		if err != nil {
			return apperr.Store("loading order counter", err)
		}
		number, err := NextOrderNumber(counter.LastNumber)
		if err != nil {
			return err
		}
		affected, err := s.Repo.AdvanceCounter(tx, counter.LastNumber, number)
		if err != nil {
			return apperr.Store("advancing order counter", err)
		}
		if affected == 0 {
			return apperr.Conflict("concurrent order creation")
		}

		order := entity.Order{
			OrderNumber:          number,
			CustomerName:         req.CustomerName,
			CustomerPhone:        req.CustomerPhone,
			CustomerAddress:      req.CustomerAddress,
			CustomerNeighborhood: req.CustomerNeighborhood,
			CustomerComplement:   req.CustomerComplement,
			PaymentMethod:        req.PaymentMethod,
			PaymentChange:        req.PaymentChange,
			DeliveryAreaID:       req.DeliveryAreaID,
			DeliveryFee:          deliveryFee,
			Subtotal:             subtotal,
			Total:                total,
			Status:               entity.StatusPending,
			Notes:                req.Notes,
			OrderDate:            time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return apperr.Store("creating order", err)
		}

		for _, r := range rows {
			oi := entity.OrderItem{
				OrderID:     order.ID,
				MenuItemID:  r.menuItemID,
				Name:        r.name,
				Price:       r.unitPrice,
				Quantity:    r.quantity,
				Ingredients: r.ingredients,
				Subtotal:    round2(r.unitPrice * float64(r.quantity)),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return apperr.Store("creating order item", err)
			}
		}

		orderID = order.ID
		return nil
	})
	return orderID, err
}

func (s *OrderService) Get(ctx context.Context, id uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order")
		}
		return nil, apperr.Store("loading order", err)
	}
	return o, nil
}

type OrderListOut struct {
	Orders      []entity.Order `json:"orders"`
	TotalPages  int64          `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Total       int64          `json:"total"`
}

func (s *OrderService) List(ctx context.Context, f repository.OrderFilter) (*OrderListOut, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, apperr.Validation("unknown status %q", f.Status)
	}
	orders, total, err := s.Repo.ListOrders(ctx, f)
	if err != nil {
		return nil, apperr.Store("listing orders", err)
	}
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	pages := (total + int64(limit) - 1) / int64(limit)
	return &OrderListOut{Orders: orders, TotalPages: pages, CurrentPage: page, Total: total}, nil
}

type UpdateOrderReq struct {
	CustomerName         *string  `json:"customerName"`
	CustomerPhone        *string  `json:"customerPhone"`
	CustomerAddress      *string  `json:"customerAddress"`
	CustomerNeighborhood *string  `json:"customerNeighborhood"`
	CustomerComplement   *string  `json:"customerComplement"`
	PaymentMethod        *string  `json:"paymentMethod"`
	PaymentChange        *float64 `json:"paymentChange"`
	DeliveryAreaID       *uint    `json:"deliveryAreaId"`
	Notes                *string  `json:"notes"`

	// when present the whole item set is replaced and totals recomputed
	Items []OrderItemIn `json:"items"`
}

// Update applies a partial update; replacing the item set rebuilds the
// rows with freshly resolved prices and recomputes every total, all in
// one transaction.
func (s *OrderService) Update(ctx context.Context, id uint, req *UpdateOrderReq) (*entity.Order, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	setStr := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setStr("customer_name", req.CustomerName)
	setStr("customer_phone", req.CustomerPhone)
	setStr("customer_address", req.CustomerAddress)
	setStr("customer_neighborhood", req.CustomerNeighborhood)
	setStr("customer_complement", req.CustomerComplement)
	setStr("payment_method", req.PaymentMethod)
	setStr("notes", req.Notes)
	if req.PaymentChange != nil {
		fields["payment_change"] = *req.PaymentChange
	}

	deliveryFee := current.DeliveryFee
	if req.DeliveryAreaID != nil {
		area, err := s.AreaRepo.FindByID(ctx, *req.DeliveryAreaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("delivery area")
			}
			return nil, apperr.Store("resolving delivery area", err)
		}
		deliveryFee = area.Fee
		fields["delivery_area_id"] = area.ID
		fields["delivery_fee"] = area.Fee
	}

	var rows []priced
	if req.Items != nil {
		if len(req.Items) == 0 {
			return nil, apperr.Validation("items must not be empty")
		}
		for _, it := range req.Items {
			if it.Quantity < 1 {
				return nil, apperr.Validation("item quantity must be at least 1")
			}
			m, err := s.MenuRepo.FindBasics(ctx, it.MenuItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperr.NotFound("menu item")
				}
				return nil, apperr.Store("resolving menu item", err)
			}
			sels := make([]entity.IngredientSelection, 0, len(it.Ingredients))
			for _, sel := range it.Ingredients {
				sels = append(sels, entity.IngredientSelection{Name: sel.Name, Selected: sel.Selected})
			}
			rows = append(rows, priced{
				menuItemID:  m.ID,
				name:        m.Name,
				unitPrice:   m.Price,
				quantity:    it.Quantity,
				ingredients: sels,
			})
		}
		subtotal := 0.0
		for _, r := range rows {
			subtotal += r.unitPrice * float64(r.quantity)
		}
		fields["subtotal"] = round2(subtotal)
		fields["total"] = round2(round2(subtotal) + deliveryFee)
	} else if req.DeliveryAreaID != nil {
		fields["total"] = round2(current.Subtotal + deliveryFee)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			affected, err := s.Repo.UpdateOrder(tx, id, fields)
			if err != nil {
				return apperr.Store("updating order", err)
			}
			if affected == 0 {
				return apperr.NotFound("order")
			}
		}
		if req.Items == nil {
			return nil
		}
		if err := s.Repo.DeleteOrderItems(tx, id); err != nil {
			return apperr.Store("replacing order items", err)
		}
		for _, r := range rows {
			oi := entity.OrderItem{
				OrderID:     id,
				MenuItemID:  r.menuItemID,
				Name:        r.name,
				Price:       r.unitPrice,
				Quantity:    r.quantity,
				Ingredients: r.ingredients,
				Subtotal:    round2(r.unitPrice * float64(r.quantity)),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return apperr.Store("replacing order items", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return s.Get(ctx, id)
}

func (s *OrderService) invalidateStats(ctx context.Context) {
	if err := s.Cache.Invalidate(ctx); err != nil {
		// stale stats are tolerable, a failed order write is not
		logCacheErr(err)
	}
}
