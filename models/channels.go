package models

// Ограничения длины полей канала, совпадают с размерами колонок в таблице channels
const (
	ChannelNameMaxLen   = 20
	ChannelChatIDMaxLen = 14
)

// Channel описывает телеграм-канал, за которым следит система.
// channel_chat_id хранится строкой: идентификаторы каналов вида -100XXXXXXXXXX не помещаются в int32
type Channel struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ChannelChatID string `json:"channel_chat_id"`
}

// ChannelCreate: тело запроса на создание канала.
// Поля обязаны присутствовать в JSON, пустая строка допустима. Указатели
// нужны, чтобы отличить отсутствующее поле от пустого значения
type ChannelCreate struct {
	Name          *string `json:"name" binding:"required,max=20"`
	ChannelChatID *string `json:"channel_chat_id" binding:"required,max=14"`
}

// ToChannel переносит проверенные поля запроса в модель
func (in ChannelCreate) ToChannel() Channel {
	var ch Channel
	if in.Name != nil {
		ch.Name = *in.Name
	}
	if in.ChannelChatID != nil {
		ch.ChannelChatID = *in.ChannelChatID
	}
	return ch
}

// ChannelPage: параметры постраничной выборки каналов
type ChannelPage struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=10" binding:"min=0"`
}
