package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tgpost_go/internal/httputil"
	"tgpost_go/pkg/storage"
)

const sessionKey = "storage.session"

// DBSession выделяет соединение из пула на время запроса.
// Соединение возвращается в пул в defer, то есть и при ошибке, и при панике обработчика
func DBSession(pool *storage.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, err := pool.Session(c.Request.Context())
		if err != nil {
			log.Printf("[DB ERROR] не удалось получить соединение: %v", err)
			httputil.RespondError(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("[DB WARN] не удалось вернуть соединение в пул: %v", err)
			}
		}()

		c.Set(sessionKey, db)
		c.Next()
	}
}

// Session возвращает хранилище текущего запроса.
// Вызывается только в обработчиках, подключённых после DBSession
func Session(c *gin.Context) *storage.DB {
	return c.MustGet(sessionKey).(*storage.DB)
}
