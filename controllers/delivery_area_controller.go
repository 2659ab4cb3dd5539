package controllers

import (
	"time"

	"github.com/Mawltheus/acaraje-manager/pkg/resp"
	"github.com/Mawltheus/acaraje-manager/services"
	"github.com/Mawltheus/acaraje-manager/utils"

	"github.com/gin-gonic/gin"
)

type DeliveryAreaController struct {
	Service *services.DeliveryAreaService
	Timeout time.Duration
}

func NewDeliveryAreaController(service *services.DeliveryAreaService, timeout time.Duration) *DeliveryAreaController {
	return &DeliveryAreaController{Service: service, Timeout: timeout}
}

// GET /api/delivery-areas?active=
func (ctl *DeliveryAreaController) List(c *gin.Context) {
	active, ok := parseBoolQuery(c, "active")
	if !ok {
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	out, err := ctl.Service.List(ctx, active)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/delivery-areas/:id
func (ctl *DeliveryAreaController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	area, err := ctl.Service.Get(ctx, id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, area)
}

// POST /api/delivery-areas
func (ctl *DeliveryAreaController) Create(c *gin.Context) {
	var req services.DeliveryAreaIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	area, err := ctl.Service.Create(ctx, &req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, area)
}

// PUT /api/delivery-areas/:id
func (ctl *DeliveryAreaController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.DeliveryAreaIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	area, err := ctl.Service.Update(ctx, id, &req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, area)
}

// PUT /api/delivery-areas/:id/status
func (ctl *DeliveryAreaController) SetActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "active must be a boolean")
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	area, err := ctl.Service.SetActive(ctx, id, *req.Active)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Toggle(c, "delivery area status updated", area)
}

// DELETE /api/delivery-areas/:id
func (ctl *DeliveryAreaController) Delete(c *gin.Context) {
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
	resp.OK(c, gin.H{"message": "delivery area deleted"})
}
