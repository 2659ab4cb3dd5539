package services

import (
	"context"
	"log"

	"github.com/Mawltheus/acaraje-manager/entity"
	"github.com/Mawltheus/acaraje-manager/pkg/apperr"

	"gorm.io/gorm"
)

func logCacheErr(err error) {
	log.Println("dashboard cache invalidation failed:", err)
}

// UpdateStatus moves an order through the lifecycle. The target must be
// a known status and the transition must be permitted; the write is a
// compare-and-swap on the current status so concurrent updates cannot
// double-apply.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, target entity.OrderStatus) (*entity.Order, error) {
	if !target.Valid() {
		return nil, apperr.Validation("unknown status %q", target)
	}

	o, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(target) {
		return nil, apperr.Validation("cannot move order from %s to %s", o.Status, target)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, target)
		if err != nil {
			return apperr.Store("updating order status", err)
		}
		if affected == 0 {
			return apperr.Conflict("order status changed concurrently")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return s.Get(ctx, orderID)
}

// Cancel is a status flip, never a row delete: cancelled orders stay
// visible in history and are excluded from revenue.
func (s *OrderService) Cancel(ctx context.Context, orderID uint) (*entity.Order, error) {
	return s.UpdateStatus(ctx, orderID, entity.StatusCancelled)
}
