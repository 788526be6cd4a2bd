package routes

import (
	"github.com/aisyahz/tepico88/configs"
	"github.com/aisyahz/tepico88/controllers"
	"github.com/aisyahz/tepico88/middlewares"
	"github.com/aisyahz/tepico88/repository"
	"github.com/aisyahz/tepico88/services"
	"github.com/aisyahz/tepico88/ws"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.FeedHub, log *zap.SugaredLogger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories & services
	menuRepo := repository.NewMenuItemRepository(db)
	preorderRepo := repository.NewPreorderRepository(db)

	catalogSvc := services.NewCatalogService(menuRepo, log)
	preorderSvc := services.NewPreorderService(db, preorderRepo, catalogSvc, hub)
	gateSvc := services.NewGateService(cfg.AdminPass, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	menuCtrl := controllers.NewMenuController(catalogSvc)
	preorderCtrl := controllers.NewPreorderController(preorderSvc)
	authCtrl := controllers.NewAuthController(gateSvc)
	manageCtrl := controllers.NewManageController(preorderSvc, cfg.SalesTargetSen)

	// Public storefront
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/grouped", menuCtrl.Grouped)
	r.GET("/preorders", preorderCtrl.List)
	r.POST("/preorders", preorderCtrl.Submit)

	// Change feed (storefront and management page both subscribe)
	r.GET("/ws/preorders", hub.HandleWebSocket)

	// Gate
	r.POST("/auth/login", authCtrl.Login)

	// Management (staff only)
	m := r.Group("/manage", middlewares.AuthMiddleware(cfg.JWTSecret, "staff"))
	{
		m.GET("/preorders", preorderCtrl.List)
		m.PATCH("/preorders/:id/status", preorderCtrl.UpdateStatus)
		m.GET("/summary", manageCtrl.Summary)
		m.GET("/statuses", manageCtrl.Statuses)
	}
}
