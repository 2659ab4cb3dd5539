package repository

import (
	"context"

	"github.com/Mawltheus/acaraje-manager/entity"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	DB *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

type IngredientFilter struct {
	Category  string
	Available *bool
}

func (r *IngredientRepository) List(ctx context.Context, f IngredientFilter) ([]entity.Ingredient, error) {
	q := r.DB.WithContext(ctx)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}
	var out []entity.Ingredient
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *IngredientRepository) FindByID(ctx context.Context, id uint) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	if err := r.DB.WithContext(ctx).First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// NameTaken checks the unique-name constraint up front so a violation
// surfaces as a conflict instead of a raw driver error.
func (r *IngredientRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.Ingredient{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *IngredientRepository) Create(ctx context.Context, ing *entity.Ingredient) error {
	return r.DB.WithContext(ctx).Create(ing).Error
}

func (r *IngredientRepository) Update(ctx context.Context, ing *entity.Ingredient) error {
	return r.DB.WithContext(ctx).Save(ing).Error
}

func (r *IngredientRepository) SetAvailability(ctx context.Context, id uint, available bool) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Ingredient{}).
		Where("id = ?", id).
		Update("available", available)
	return res.RowsAffected, res.Error
}

func (r *IngredientRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.Ingredient{}, id)
	return res.RowsAffected, res.Error
}
