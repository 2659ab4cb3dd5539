package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mawltheus/acaraje-manager/configs"
	"github.com/Mawltheus/acaraje-manager/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Ingredient{}, &entity.MenuItem{},
		&entity.DeliveryArea{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.OrderCounter{},
	))
	require.NoError(t, db.FirstOrCreate(&entity.OrderCounter{}, entity.OrderCounter{ID: 1}).Error)

	cfg := &configs.Config{
		Location:     time.Local,
		QueryTimeout: 5 * time.Second,
	}
	r := gin.New()
	RegisterRoutes(r, db, cfg, nil)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderEndpoint(t *testing.T) {
	r, db := setupRouter(t)

	area := entity.DeliveryArea{Name: "Barra", Fee: 8.00, EstimatedTime: 30, Active: true}
	require.NoError(t, db.Create(&area).Error)
	item := entity.MenuItem{Name: "Acarajé", Category: entity.CategoryAcarajes, Price: 8.00, Available: true}
	require.NoError(t, db.Create(&item).Error)

	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"customerName":   "Maria",
		"customerPhone":  "71 99999-0000",
		"paymentMethod":  "dinheiro",
		"deliveryAreaId": area.ID,
		"items":          []gin.H{{"menuItemId": item.ID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got entity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "PED0001", got.OrderNumber)
	assert.Equal(t, entity.StatusPending, got.Status)
	assert.InDelta(t, 16.00, got.Subtotal, 1e-9)
	assert.InDelta(t, 24.00, got.Total, 1e-9)
	require.NotNil(t, got.DeliveryArea)
	assert.Equal(t, "Barra", got.DeliveryArea.Name)
}

func TestCreateOrderEndpointValidation(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"customerPhone": "71 99999-0000",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "message")
}

func TestListOrdersStatusFilter(t *testing.T) {
	r, db := setupRouter(t)

	now := time.Now()
	orders := []entity.Order{
		{OrderNumber: "PED0001", CustomerName: "A", CustomerPhone: "1", PaymentMethod: "pix", Status: entity.StatusDelivered, CreatedAt: now.AddDate(0, 0, -3)},
		{OrderNumber: "PED0002", CustomerName: "B", CustomerPhone: "2", PaymentMethod: "pix", Status: entity.StatusDelivered, CreatedAt: now},
		{OrderNumber: "PED0003", CustomerName: "C", CustomerPhone: "3", PaymentMethod: "pix", Status: entity.StatusPending, CreatedAt: now},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/orders?status=delivered", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Orders []entity.Order `json:"orders"`
		Total  int64          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.EqualValues(t, 2, out.Total)
	for _, o := range out.Orders {
		assert.Equal(t, entity.StatusDelivered, o.Status)
	}
}

func TestUpdateStatusMissingOrderReturns404(t *testing.T) {
	r, db := setupRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/orders/99/status", gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	r, db := setupRouter(t)

	o := entity.Order{OrderNumber: "PED0001", CustomerName: "A", CustomerPhone: "1", PaymentMethod: "pix", Status: entity.StatusPending}
	require.NoError(t, db.Create(&o).Error)

	w := doJSON(t, r, http.MethodPut, "/api/orders/1/status", gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityToggleEnvelope(t *testing.T) {
	r, db := setupRouter(t)

	item := entity.MenuItem{Name: "Acarajé", Category: entity.CategoryAcarajes, Price: 8.00, Available: true}
	require.NoError(t, db.Create(&item).Error)

	w := doJSON(t, r, http.MethodPut, "/api/menu/1/availability", gin.H{"available": false})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    entity.MenuItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.False(t, body.Data.Available)

	// non-boolean flag is a validation error
	w = doJSON(t, r, http.MethodPut, "/api/menu/1/availability", gin.H{"available": "yes"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrderCancels(t *testing.T) {
	r, db := setupRouter(t)

	o := entity.Order{OrderNumber: "PED0001", CustomerName: "A", CustomerPhone: "1", PaymentMethod: "pix", Status: entity.StatusPending, Total: 10}
	require.NoError(t, db.Create(&o).Error)

	w := doJSON(t, r, http.MethodDelete, "/api/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.Order
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, entity.StatusCancelled, got.Status)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	r, db := setupRouter(t)

	o := entity.Order{
		OrderNumber: "PED0001", CustomerName: "A", CustomerPhone: "1",
		PaymentMethod: "pix", Status: entity.StatusPending, Total: 24,
		CreatedAt: time.Now(),
		Items:     []entity.OrderItem{{Name: "Acarajé", Price: 8, Quantity: 3, Subtotal: 24}},
	}
	require.NoError(t, db.Create(&o).Error)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"todayStats", "generalStats", "topItems", "ordersByStatus", "recentOrders"} {
		assert.Contains(t, body, key)
	}
}

func TestSalesReportEndDateCoversWholeDay(t *testing.T) {
	r, db := setupRouter(t)

	// half a second before midnight of the requested endDate
	lastMoment := time.Date(2026, 8, 20, 23, 59, 59, 500_000_000, time.Local)
	o := entity.Order{
		OrderNumber: "PED0001", CustomerName: "A", CustomerPhone: "1",
		PaymentMethod: "pix", Status: entity.StatusDelivered, Total: 24,
		CreatedAt: lastMoment,
	}
	require.NoError(t, db.Create(&o).Error)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/sales-report?startDate=2026-08-20&endDate=2026-08-20", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var buckets []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &buckets))
	require.Len(t, buckets, 1)
	assert.EqualValues(t, 1, buckets[0]["orders"])
}

func TestListRejectsNonBooleanFlag(t *testing.T) {
	r, _ := setupRouter(t)

	for _, path := range []string{
		"/api/menu?available=yes",
		"/api/ingredients?available=maybe",
		"/api/delivery-areas?active=si",
	} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}

	w := doJSON(t, r, http.MethodGet, "/api/menu?available=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIngredientConflictEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/ingredients", gin.H{"name": "Vatapá", "category": "molho"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/ingredients", gin.H{"name": "Vatapá"})
	assert.Equal(t, http.StatusConflict, w.Code)
}
