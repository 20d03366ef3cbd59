package routes

import (
	"comboapi/configs"
	"comboapi/controllers"
	"comboapi/middlewares"
	"comboapi/pkg/cache"
	"comboapi/repository"
	"comboapi/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, inv cache.Invalidator, log *zap.SugaredLogger) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	comboRepo := repository.NewComboRepository(db)
	linkRepo := repository.NewComboDishRepository(db)
	dishRepo := repository.NewDishRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	comboSvc := services.NewComboService(db, comboRepo, linkRepo, inv, log)
	dishSvc := services.NewDishService(db, dishRepo, linkRepo, inv, log)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	comboCtrl := controllers.NewComboController(comboSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	catCtrl := controllers.NewCategoryController(catRepo)
	authCtrl := controllers.NewAuthController(authSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Back office (admin + staff)
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin", "staff"))
	{
		admin.POST("/combos", comboCtrl.Create)
		admin.GET("/combos/page", comboCtrl.Page)
		admin.GET("/combos/:id", comboCtrl.Get)
		admin.PUT("/combos", comboCtrl.Update)
		admin.DELETE("/combos", comboCtrl.DeleteBatch)
		admin.POST("/combos/status/:status", comboCtrl.StartOrStop)

		admin.POST("/dishes", dishCtrl.Create)
		admin.GET("/dishes/page", dishCtrl.Page)
		admin.GET("/dishes", dishCtrl.ListByCategory)
		admin.DELETE("/dishes", dishCtrl.DeleteBatch)
		admin.POST("/dishes/status/:status", dishCtrl.StartOrStop)

		admin.GET("/categories", catCtrl.List)
	}

	// Staff accounts are created by admins only
	r.POST("/admin/staff", middlewares.AuthMiddleware("admin"), authCtrl.Register)
}
