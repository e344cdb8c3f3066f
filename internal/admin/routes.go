package admin

import (
	"log"

	"github.com/gin-gonic/gin"
)

// SetupRoutes монтирует страницы панели в группу.
// Группа должна быть подключена после middleware.DBSession
func SetupRoutes(r *gin.RouterGroup, a *Admin) {
	a.base = r.BasePath()

	r.GET("/", a.Index)
	r.GET("/:view/list", a.List)
	r.GET("/:view/details/:id", a.Details)
	r.GET("/:view/create", a.CreateForm)
	r.POST("/:view/create", a.Create)
	r.GET("/:view/edit/:id", a.EditForm)
	r.POST("/:view/edit/:id", a.Edit)
	r.POST("/:view/delete/:id", a.Delete)

	log.Printf("[ROUTER] Admin routes registered at %s (%d views)", a.base, len(a.views))
}
