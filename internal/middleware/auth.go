package middleware

import (
	"github.com/gin-gonic/gin"
)

// AuthRequired закрывает группу маршрутов HTTP Basic-авторизацией.
// Пустое имя пользователя означает, что авторизация не настроена и запросы пропускаются
func AuthRequired(username, password string) gin.HandlerFunc {
	if username == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return gin.BasicAuthForRealm(gin.Accounts{username: password}, "tgpost admin")
}
