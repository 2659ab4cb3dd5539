package controllers

import (
	"time"

	"github.com/Mawltheus/acaraje-manager/pkg/resp"
	"github.com/Mawltheus/acaraje-manager/services"
	"github.com/Mawltheus/acaraje-manager/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *services.DashboardService
	Loc     *time.Location
	Timeout time.Duration
}

func NewDashboardController(service *services.DashboardService, loc *time.Location, timeout time.Duration) *DashboardController {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardController{Service: service, Loc: loc, Timeout: timeout}
}

// GET /api/dashboard/stats
func (ctl *DashboardController) Stats(c *gin.Context) {
	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	resp.OK(c, ctl.Service.Stats(ctx, time.Now()))
}

// GET /api/dashboard/sales-report?startDate=&endDate=&groupBy=day|month
func (ctl *DashboardController) SalesReport(c *gin.Context) {
	var start, end *time.Time
	if v := c.Query("startDate"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, ctl.Loc)
		if err != nil {
			resp.BadRequest(c, "startDate must be YYYY-MM-DD")
			return
		}
		start = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, ctl.Loc)
		if err != nil {
			resp.BadRequest(c, "endDate must be YYYY-MM-DD")
			return
		}
		// the requested day is covered in full: the window ends at the
		// start of the following day, exclusive
		t = t.AddDate(0, 0, 1)
		end = &t
	}

	ctx, cancel := utils.QueryContext(c, ctl.Timeout)
	defer cancel()

	buckets, err := ctl.Service.SalesReport(ctx, start, end, c.DefaultQuery("groupBy", "day"))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, buckets)
}
