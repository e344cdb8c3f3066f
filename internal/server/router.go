// Package server собирает HTTP-маршруты сервиса
package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tgpost_go/internal/admin"
	"tgpost_go/internal/channels"
	"tgpost_go/internal/config"
	"tgpost_go/internal/greeting"
	"tgpost_go/internal/httputil"
	"tgpost_go/internal/middleware"
	"tgpost_go/pkg/storage"
)

// AdminPath: адрес, по которому смонтирована панель администратора
const AdminPath = "/admin"

// SetupRouter настраивает маршруты. Соединение с БД выдаётся только группам,
// которым оно нужно: приветствия и health check работают без него
func SetupRouter(pool *storage.Pool, cfg *config.Config) *gin.Engine {
	httputil.UseJSONFieldNames()

	r := gin.Default()
	r.Use(middleware.RequestID())

	greeting.SetupRoutes(r)

	channelGroup := r.Group("/channels", middleware.DBSession(pool))
	channels.SetupRoutes(channelGroup)

	adminGroup := r.Group(AdminPath,
		middleware.AuthRequired(cfg.Admin.Username, cfg.Admin.Password),
		middleware.DBSession(pool),
	)
	admin.SetupRoutes(adminGroup, admin.New(cfg.Admin.Title, admin.DefaultViews()...))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	log.Printf("[ROUTER] Routes initialized:")
	log.Printf("[ROUTER] GET /")
	log.Printf("[ROUTER] GET /hello/:name")
	log.Printf("[ROUTER] POST /channels/")
	log.Printf("[ROUTER] GET /channels/")
	log.Printf("[ROUTER] GET %s/", AdminPath)
	log.Printf("[ROUTER] GET /health")

	return r
}
