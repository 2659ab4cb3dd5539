package services

import (
	"context"
	"errors"

	"github.com/Mawltheus/acaraje-manager/entity"
	"github.com/Mawltheus/acaraje-manager/pkg/apperr"
	"github.com/Mawltheus/acaraje-manager/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo    *repository.MenuRepository
	IngRepo *repository.IngredientRepository
}

func NewMenuService(repo *repository.MenuRepository, ingRepo *repository.IngredientRepository) *MenuService {
	return &MenuService{Repo: repo, IngRepo: ingRepo}
}

type MenuItemIn struct {
	Name            string              `json:"name" binding:"required"`
	Description     string              `json:"description"`
	Category        entity.MenuCategory `json:"category" binding:"required"`
	Price           *float64            `json:"price" binding:"required"`
	Image           string              `json:"image"`
	Available       *bool               `json:"available"`
	PreparationTime int                 `json:"preparationTime"`
	IngredientIDs   []uint              `json:"ingredientIds"`
}

func (s *MenuService) validate(in *MenuItemIn) error {
	if !in.Category.Valid() {
		return apperr.Validation("unknown category %q", in.Category)
	}
	if in.Price == nil || *in.Price < 0 {
		return apperr.Validation("price must be non-negative")
	}
	return nil
}

func (s *MenuService) resolveIngredients(ctx context.Context, ids []uint) ([]entity.Ingredient, error) {
	out := make([]entity.Ingredient, 0, len(ids))
	for _, id := range ids {
		ing, err := s.IngRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("ingredient")
			}
			return nil, apperr.Store("resolving ingredient", err)
		}
		out = append(out, *ing)
	}
	return out, nil
}

func (s *MenuService) List(ctx context.Context, f repository.MenuFilter) ([]entity.MenuItem, error) {
	items, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, apperr.Store("listing menu items", err)
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item")
		}
		return nil, apperr.Store("loading menu item", err)
	}
	return item, nil
}

func (s *MenuService) Create(ctx context.Context, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(ctx, in.IngredientIDs)
	if err != nil {
		return nil, err
	}

	item := entity.MenuItem{
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Price:           *in.Price,
		Image:           in.Image,
		Available:       true,
		PreparationTime: in.PreparationTime,
		Ingredients:     ingredients,
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
	if item.PreparationTime <= 0 {
		item.PreparationTime = 15
	}
	if err := s.Repo.Create(ctx, &item); err != nil {
		return nil, apperr.Store("creating menu item", err)
	}
	return s.Get(ctx, item.ID)
}

func (s *MenuService) Update(ctx context.Context, id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(ctx, in.IngredientIDs)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Category = in.Category
	item.Price = *in.Price
	item.Image = in.Image
	item.Ingredients = ingredients
	if in.Available != nil {
		item.Available = *in.Available
	}
	if in.PreparationTime > 0 {
		item.PreparationTime = in.PreparationTime
	}
	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, apperr.Store("updating menu item", err)
	}
	return s.Get(ctx, id)
}

func (s *MenuService) SetAvailability(ctx context.Context, id uint, available bool) (*entity.MenuItem, error) {
	affected, err := s.Repo.SetAvailability(ctx, id, available)
	if err != nil {
		return nil, apperr.Store("updating menu item availability", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("menu item")
	}
	return s.Get(ctx, id)
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return apperr.Store("deleting menu item", err)
	}
	if affected == 0 {
		return apperr.NotFound("menu item")
	}
	return nil
}
