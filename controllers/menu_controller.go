package controllers

import (
	"strconv"
	"time"

	"github.com/Mawltheus/acaraje-manager/pkg/resp"
	"github.com/Mawltheus/acaraje-manager/repository"
	"github.com/Mawltheus/acaraje-manager/services"
	"github.com/Mawltheus/acaraje-manager/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
	Timeout time.Duration
}

func NewMenuController(service *services.MenuService, timeout time.Duration) *MenuController {
	return &MenuController{Service: service, Timeout: timeout}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func parseBoolQuery(c *gin.Context, key string) (*bool, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		resp.BadRequest(c, key+" must be a boolean")
		return nil, false
	}
	return &b, true
}

// GET /api/menu?category=&available=
func (ctl *MenuController) List(c *gin.Context) {
	available, ok := parseBoolQuery(c, "available")
	if !ok {
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	items, err := ctl.Service.List(ctx, repository.MenuFilter{
		Category:  c.Query("category"),
		Available: available,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	item, err := ctl.Service.Get(ctx, id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	item, err := ctl.Service.Create(ctx, &req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	item, err := ctl.Service.Update(ctx, id, &req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT /api/menu/:id/availability
func (ctl *MenuController) SetAvailability(c *gin.Context) {
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

	item, err := ctl.Service.SetAvailability(ctx, id, *req.Available)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Toggle(c, "menu item availability updated", item)
}

// DELETE /api/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
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
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
