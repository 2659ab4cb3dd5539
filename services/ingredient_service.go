package services

import (
	"context"
	"errors"

	"github.com/Mawltheus/acaraje-manager/entity"
	"github.com/Mawltheus/acaraje-manager/pkg/apperr"
	"github.com/Mawltheus/acaraje-manager/repository"

	"gorm.io/gorm"
)

type IngredientService struct {
	Repo *repository.IngredientRepository
}

func NewIngredientService(repo *repository.IngredientRepository) *IngredientService {
	return &IngredientService{Repo: repo}
}

type IngredientIn struct {
	Name        string                    `json:"name" binding:"required"`
	Description string                    `json:"description"`
	Category    entity.IngredientCategory `json:"category"`
	Price       float64                   `json:"price"`
	Available   *bool                     `json:"available"`
}

func (s *IngredientService) List(ctx context.Context, f repository.IngredientFilter) ([]entity.Ingredient, error) {
	out, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, apperr.Store("listing ingredients", err)
	}
	return out, nil
}

func (s *IngredientService) Get(ctx context.Context, id uint) (*entity.Ingredient, error) {
	ing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("ingredient")
		}
		return nil, apperr.Store("loading ingredient", err)
	}
	return ing, nil
}

func (s *IngredientService) Create(ctx context.Context, in *IngredientIn) (*entity.Ingredient, error) {
	category := in.Category
	if category == "" {
		category = entity.IngredientOutro
	}
	if !category.Valid() {
		return nil, apperr.Validation("unknown category %q", category)
	}
	taken, err := s.Repo.NameTaken(ctx, in.Name, 0)
	if err != nil {
		return nil, apperr.Store("checking ingredient name", err)
	}
	if taken {
		return nil, apperr.Conflict("ingredient %q already exists", in.Name)
	}

	ing := entity.Ingredient{
		Name:        in.Name,
		Description: in.Description,
		Category:    category,
		Price:       in.Price,
		Available:   true,
	}
	if in.Available != nil {
		ing.Available = *in.Available
	}
	if err := s.Repo.Create(ctx, &ing); err != nil {
		return nil, apperr.Store("creating ingredient", err)
	}
	return &ing, nil
}

func (s *IngredientService) Update(ctx context.Context, id uint, in *IngredientIn) (*entity.Ingredient, error) {
	ing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Category != "" && !in.Category.Valid() {
		return nil, apperr.Validation("unknown category %q", in.Category)
	}
	taken, err := s.Repo.NameTaken(ctx, in.Name, id)
	if err != nil {
		return nil, apperr.Store("checking ingredient name", err)
	}
	if taken {
		return nil, apperr.Conflict("ingredient %q already exists", in.Name)
	}

	ing.Name = in.Name
	ing.Description = in.Description
	if in.Category != "" {
		ing.Category = in.Category
	}
	ing.Price = in.Price
	if in.Available != nil {
		ing.Available = *in.Available
	}
	if err := s.Repo.Update(ctx, ing); err != nil {
		return nil, apperr.Store("updating ingredient", err)
	}
	return ing, nil
}

func (s *IngredientService) SetAvailability(ctx context.Context, id uint, available bool) (*entity.Ingredient, error) {
	affected, err := s.Repo.SetAvailability(ctx, id, available)
	if err != nil {
		return nil, apperr.Store("updating ingredient availability", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("ingredient")
	}
	return s.Get(ctx, id)
}

func (s *IngredientService) Delete(ctx context.Context, id uint) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return apperr.Store("deleting ingredient", err)
	}
	if affected == 0 {
		return apperr.NotFound("ingredient")
	}
	return nil
}
