package controllers

import (
	"time"

	"github.com/Mawltheus/acaraje-manager/pkg/resp"
	"github.com/Mawltheus/acaraje-manager/repository"
	"github.com/Mawltheus/acaraje-manager/services"
	"github.com/Mawltheus/acaraje-manager/utils"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	Service *services.IngredientService
	Timeout time.Duration
}

func NewIngredientController(service *services.IngredientService, timeout time.Duration) *IngredientController {
	return &IngredientController{Service: service, Timeout: timeout}
}

// GET /api/ingredients?available=&category=
func (ctl *IngredientController) List(c *gin.Context) {
	available, ok := parseBoolQuery(c, "available")
	if !ok {
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	out, err := ctl.Service.List(ctx, repository.IngredientFilter{
		Category:  c.Query("category"),
		Available: available,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/ingredients/:id
func (ctl *IngredientController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	ing, err := ctl.Service.Get(ctx, id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, ing)
}

// POST /api/ingredients
func (ctl *IngredientController) Create(c *gin.Context) {
	var req services.IngredientIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	ing, err := ctl.Service.Create(ctx, &req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, ing)
}

// PUT /api/ingredients/:id
func (ctl *IngredientController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.IngredientIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	ing, err := ctl.Service.Update(ctx, id, &req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, ing)
}

// PUT /api/ingredients/:id/availability
func (ctl *IngredientController) SetAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "available must be a boolean")
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	ing, err := ctl.Service.SetAvailability(ctx, id, *req.Available)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Toggle(c, "ingredient availability updated", ing)
}

// DELETE /api/ingredients/:id
func (ctl *IngredientController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	if err := ctl.Service.Delete(ctx, id); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "ingredient deleted"})
}
