package controllers

import (
	"strconv"
	"time"

	"github.com/Mawltheus/acaraje-manager/entity"
	"github.com/Mawltheus/acaraje-manager/pkg/resp"
	"github.com/Mawltheus/acaraje-manager/repository"
	"github.com/Mawltheus/acaraje-manager/services"
	"github.com/Mawltheus/acaraje-manager/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
	Loc     *time.Location
	Timeout time.Duration
}

func NewOrderController(service *services.OrderService, loc *time.Location, timeout time.Duration) *OrderController {
	if loc == nil {
		loc = time.Local
	}
	return &OrderController{Service: service, Loc: loc, Timeout: timeout}
}

// GET /api/orders?status=&date=&page=&limit=
func (ctl *OrderController) List(c *gin.Context) {
	filter := repository.OrderFilter{
		Status: entity.OrderStatus(c.Query("status")),
	}
	if d := c.Query("date"); d != "" {
		day, err := time.ParseInLocation("2006-01-02", d, ctl.Loc)
		if err != nil {
			resp.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		filter.Date = &day
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	out, err := ctl.Service.List(ctx, filter)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	o, err := ctl.Service.Get(ctx, id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	o, err := ctl.Service.Create(ctx, &req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, o)
}

// PUT /api/orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	o, err := ctl.Service.Update(ctx, id, &req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, o)
}

// PUT /api/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "status is required")
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	o, err := ctl.Service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, o)
}

// DELETE /api/orders/:id — cancels, never deletes the row
func (ctl *OrderController) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	if _, err := ctl.Service.Cancel(ctx, id); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order cancelled"})
}
