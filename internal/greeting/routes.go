package greeting

import "github.com/gin-gonic/gin"

// SetupRoutes регистрирует приветственные маршруты, им не нужна БД
func SetupRoutes(r gin.IRoutes) {
	r.GET("/", Root)
	r.GET("/hello/:name", SayHello)
}
