package services

import (
	"context"
	"errors"

	"github.com/Mawltheus/acaraje-manager/entity"
	"github.com/Mawltheus/acaraje-manager/pkg/apperr"
	"github.com/Mawltheus/acaraje-manager/repository"

	"gorm.io/gorm"
)

type DeliveryAreaService struct {
	Repo *repository.DeliveryAreaRepository
}

func NewDeliveryAreaService(repo *repository.DeliveryAreaRepository) *DeliveryAreaService {
	return &DeliveryAreaService{Repo: repo}
}

type DeliveryAreaIn struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Fee           *float64 `json:"fee" binding:"required"`
	EstimatedTime int      `json:"estimatedTime"`
	Active        *bool    `json:"active"`
}

func (s *DeliveryAreaService) List(ctx context.Context, active *bool) ([]entity.DeliveryArea, error) {
	out, err := s.Repo.List(ctx, active)
	if err != nil {
		return nil, apperr.Store("listing delivery areas", err)
	}
	return out, nil
}

func (s *DeliveryAreaService) Get(ctx context.Context, id uint) (*entity.DeliveryArea, error) {
	area, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("delivery area")
		}
		return nil, apperr.Store("loading delivery area", err)
	}
	return area, nil
}

func (s *DeliveryAreaService) Create(ctx context.Context, in *DeliveryAreaIn) (*entity.DeliveryArea, error) {
	if in.Fee == nil || *in.Fee < 0 {
		return nil, apperr.Validation("fee must be non-negative")
	}
	taken, err := s.Repo.NameTaken(ctx, in.Name, 0)
	if err != nil {
		return nil, apperr.Store("checking delivery area name", err)
	}
	if taken {
		return nil, apperr.Conflict("delivery area %q already exists", in.Name)
	}

	area := entity.DeliveryArea{
		Name:          in.Name,
		Description:   in.Description,
		Fee:           *in.Fee,
		EstimatedTime: in.EstimatedTime,
		Active:        true,
	}
	if area.EstimatedTime <= 0 {
		area.EstimatedTime = 30
	}
	if in.Active != nil {
		area.Active = *in.Active
	}
	if err := s.Repo.Create(ctx, &area); err != nil {
		return nil, apperr.Store("creating delivery area", err)
	}
	return &area, nil
}

func (s *DeliveryAreaService) Update(ctx context.Context, id uint, in *DeliveryAreaIn) (*entity.DeliveryArea, error) {
	area, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Fee == nil || *in.Fee < 0 {
		return nil, apperr.Validation("fee must be non-negative")
	}
	taken, err := s.Repo.NameTaken(ctx, in.Name, id)
	if err != nil {
		return nil, apperr.Store("checking delivery area name", err)
	}
	if taken {
		return nil, apperr.Conflict("delivery area %q already exists", in.Name)
	}

	area.Name = in.Name
	area.Description = in.Description
	area.Fee = *in.Fee
	if in.EstimatedTime > 0 {
		area.EstimatedTime = in.EstimatedTime
	}
	if in.Active != nil {
		area.Active = *in.Active
	}
	if err := s.Repo.Update(ctx, area); err != nil {
		return nil, apperr.Store("updating delivery area", err)
	}
	return area, nil
}

func (s *DeliveryAreaService) SetActive(ctx context.Context, id uint, active bool) (*entity.DeliveryArea, error) {
	affected, err := s.Repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, apperr.Store("updating delivery area status", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("delivery area")
	}
	return s.Get(ctx, id)
}

func (s *DeliveryAreaService) Delete(ctx context.Context, id uint) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return apperr.Store("deleting delivery area", err)
	}
	if affected == 0 {
		return apperr.NotFound("delivery area")
	}
	return nil
}
