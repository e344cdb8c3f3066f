package channels

import (
	"log"
	"net/http"

	"tgpost_go/internal/httputil"
	"tgpost_go/internal/middleware"
	"tgpost_go/models"
	"tgpost_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Handler обрабатывает HTTP-запросы, связанные с каналами.
// Состояния нет: хранилище берётся из сессии текущего запроса
type Handler struct{}

// NewHandler создаёт новый экземпляр обработчика
func NewHandler() *Handler {
	return &Handler{}
}

// CreateChannel проверяет тело запроса, сохраняет канал и возвращает сохранённую запись
func (h *Handler) CreateChannel(c *gin.Context) {
	var input models.ChannelCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondValidationError(c, httputil.SourceBody, err)
		return
	}

	created, err := middleware.Session(c).CreateChannel(c.Request.Context(), input.ToChannel())
	if err != nil {
		logDBError(c, "не удалось создать канал", err)
		httputil.RespondError(c, http.StatusInternalServerError, "db error")
		return
	}

	c.JSON(http.StatusOK, created)
}

// GetChannels возвращает страницу каналов по параметрам skip и limit
func (h *Handler) GetChannels(c *gin.Context) {
	var page models.ChannelPage
	if err := c.ShouldBindQuery(&page); err != nil {
		httputil.RespondValidationError(c, httputil.SourceQuery, err)
		return
	}

	channels, err := middleware.Session(c).ListChannels(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		logDBError(c, "не удалось получить каналы", err)
		httputil.RespondError(c, http.StatusInternalServerError, "db error")
		return
	}

	c.JSON(http.StatusOK, channels)
}

// logDBError пишет ошибку БД с идентификатором запроса, клиенту уходит только "db error"
func logDBError(c *gin.Context, msg string, err error) {
	reqID := middleware.GetRequestID(c)
	if storage.IsConstraintViolation(err) {
		log.Printf("[HANDLER ERROR] [%s] %s: нарушено ограничение %q: %v", reqID, msg, storage.ConstraintName(err), err)
		return
	}
	log.Printf("[HANDLER ERROR] [%s] %s: %v", reqID, msg, err)
}
