package repository

import (
	"context"

	"github.com/Mawltheus/acaraje-manager/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

type MenuFilter struct {
	Category  string
	Available *bool
}

func (r *MenuRepository) List(ctx context.Context, f MenuFilter) ([]entity.MenuItem, error) {
	q := r.DB.WithContext(ctx).Preload("Ingredients")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}
	var items []entity.MenuItem
	err := q.Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(ctx context.Context, id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.WithContext(ctx).Preload("Ingredients").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindBasics loads only what order creation needs to price a line.
func (r *MenuRepository) FindBasics(ctx context.Context, id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.WithContext(ctx).
		Select("id, name, price, available").
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *MenuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(item).Association("Ingredients").Replace(item.Ingredients); err != nil {
			return err
		}
		return tx.Omit("Ingredients").Save(item).Error
	})
}

func (r *MenuRepository) SetAvailability(ctx context.Context, id uint, available bool) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("available", available)
	return res.RowsAffected, res.Error
}

// Delete detaches the ingredient associations before removing the row.
// Ingredients themselves are never cascade-deleted.
func (r *MenuRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var deleted int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item := entity.MenuItem{ID: id}
		if err := tx.Model(&item).Association("Ingredients").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&entity.MenuItem{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
