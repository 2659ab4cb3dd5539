package repository

import (
	"context"

	"github.com/Mawltheus/acaraje-manager/entity"

	"gorm.io/gorm"
)

type DeliveryAreaRepository struct {
	DB *gorm.DB
}

func NewDeliveryAreaRepository(db *gorm.DB) *DeliveryAreaRepository {
	return &DeliveryAreaRepository{DB: db}
}

func (r *DeliveryAreaRepository) List(ctx context.Context, active *bool) ([]entity.DeliveryArea, error) {
	q := r.DB.WithContext(ctx)
	if active != nil {
		q = q.Where("active = ?", *active)
	}
	var out []entity.DeliveryArea
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *DeliveryAreaRepository) FindByID(ctx context.Context, id uint) (*entity.DeliveryArea, error) {
	var area entity.DeliveryArea
	if err := r.DB.WithContext(ctx).First(&area, id).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *DeliveryAreaRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.DeliveryArea{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *DeliveryAreaRepository) Create(ctx context.Context, area *entity.DeliveryArea) error {
	return r.DB.WithContext(ctx).Create(area).Error
}

func (r *DeliveryAreaRepository) Update(ctx context.Context, area *entity.DeliveryArea) error {
	return r.DB.WithContext(ctx).Save(area).Error
}

func (r *DeliveryAreaRepository) SetActive(ctx context.Context, id uint, active bool) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.DeliveryArea{}).
		Where("id = ?", id).
		Update("active", active)
	return res.RowsAffected, res.Error
}

func (r *DeliveryAreaRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.DeliveryArea{}, id)
	return res.RowsAffected, res.Error
}
