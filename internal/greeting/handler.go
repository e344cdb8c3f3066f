package greeting

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root отвечает постоянным приветствием
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

// SayHello подставляет имя из пути в приветствие без изменений
func SayHello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello " + c.Param("name")})
}
