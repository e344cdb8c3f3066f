package channels

import (
	"log"

	"github.com/gin-gonic/gin"
)

// SetupRoutes регистрирует маршруты для работы с каналами.
// Группа должна быть подключена после middleware.DBSession
func SetupRoutes(r *gin.RouterGroup) {
	h := NewHandler()
	r.POST("/", h.CreateChannel)
	r.GET("/", h.GetChannels)

	log.Printf("[ROUTER] Channel routes registered")
}
