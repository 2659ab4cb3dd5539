package routes

import (
	"github.com/Mawltheus/acaraje-manager/configs"
	"github.com/Mawltheus/acaraje-manager/controllers"
	"github.com/Mawltheus/acaraje-manager/pkg/cache"
	"github.com/Mawltheus/acaraje-manager/repository"
	"github.com/Mawltheus/acaraje-manager/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, statsCache *cache.DashboardCache) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	areaRepo := repository.NewDeliveryAreaRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo, ingredientRepo)
	ingredientSvc := services.NewIngredientService(ingredientRepo)
	areaSvc := services.NewDeliveryAreaService(areaRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, areaRepo, statsCache)
	dashboardSvc := services.NewDashboardService(dashboardRepo, cfg.Location, statsCache)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc, cfg.QueryTimeout)
	ingredientCtrl := controllers.NewIngredientController(ingredientSvc, cfg.QueryTimeout)
	areaCtrl := controllers.NewDeliveryAreaController(areaSvc, cfg.QueryTimeout)
	orderCtrl := controllers.NewOrderController(orderSvc, cfg.Location, cfg.QueryTimeout)
	dashboardCtrl := controllers.NewDashboardController(dashboardSvc, cfg.Location, cfg.QueryTimeout)

	api := r.Group("/api")

	menu := api.Group("/menu")
	{
		menu.GET("", menuCtrl.List)
		menu.GET("/:id", menuCtrl.Get)
		menu.POST("", menuCtrl.Create)
		menu.PUT("/:id", menuCtrl.Update)
		menu.PUT("/:id/availability", menuCtrl.SetAvailability)
		menu.DELETE("/:id", menuCtrl.Delete)
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", ingredientCtrl.List)
		ingredients.GET("/:id", ingredientCtrl.Get)
		ingredients.POST("", ingredientCtrl.Create)
		ingredients.PUT("/:id", ingredientCtrl.Update)
		ingredients.PUT("/:id/availability", ingredientCtrl.SetAvailability)
		ingredients.DELETE("/:id", ingredientCtrl.Delete)
	}

	areas := api.Group("/delivery-areas")
	{
		areas.GET("", areaCtrl.List)
		areas.GET("/:id", areaCtrl.Get)
		areas.POST("", areaCtrl.Create)
		areas.PUT("/:id", areaCtrl.Update)
		areas.PUT("/:id/status", areaCtrl.SetActive)
		areas.DELETE("/:id", areaCtrl.Delete)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Get)
		orders.POST("", orderCtrl.Create)
		orders.PUT("/:id", orderCtrl.Update)
		orders.PUT("/:id/status", orderCtrl.UpdateStatus)
		orders.DELETE("/:id", orderCtrl.Cancel)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboardCtrl.Stats)
		dashboard.GET("/sales-report", dashboardCtrl.SalesReport)
	}
}
