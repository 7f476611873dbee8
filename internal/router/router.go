package router

import (
	"time"

	"github.com/Xinhui001/user-center/internal/config"
	"github.com/Xinhui001/user-center/internal/handler"
	"github.com/Xinhui001/user-center/internal/middleware"
	"github.com/Xinhui001/user-center/internal/service"
	"github.com/Xinhui001/user-center/internal/session"
	"github.com/Xinhui001/user-center/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires handlers to their routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	ttl := time.Duration(cfg.Session.ExpireHours) * time.Hour
	sessions := session.NewStore(rdb, ttl)
	users := store.NewUserStore(db)
	svc := service.NewUserService(users)

	// ====== API ======
	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(sessions, cfg.Session.CookieName, int(ttl.Seconds())))

	userHandler := handler.NewUserHandler(svc)
	u := api.Group("/user")
	u.POST("/register", userHandler.Register)
	u.POST("/login", userHandler.Login)
	u.POST("/logout", userHandler.Logout)
	u.GET("/current", userHandler.Current)

	// 管理员接口，权限判定在 service 层
	u.GET("/search", userHandler.Search)
	u.POST("/delete", userHandler.Delete)

	exportHandler := handler.NewExportHandler(svc)
	u.GET("/export/csv", exportHandler.ExportCSV)
	u.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
