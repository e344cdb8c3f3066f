package models

const (
	PostNameMaxLen = 40

	// DefaultLastViewedDestinationIndex означает, что ни одно направление поста ещё не показывалось
	DefaultLastViewedDestinationIndex = -1

	// Количество направлений в посте ограничено CHECK-ограничением в таблице posts
	MinCountOfDirectionsInPost     = 1
	MaxCountOfDirectionsInPost     = 4
	DefaultCountOfDirectionsInPost = MaxCountOfDirectionsInPost
)

// Post: публикация, привязанная к каналу.
// Поле chanel_id названо так же, как колонка в БД.
// last_viewed_destination_index хранит индекс последнего показанного направления,
// сама логика выбора направлений в сервисе не реализована
type Post struct {
	ID                         int     `json:"id"`
	Name                       string  `json:"name"`
	ChanelID                   int     `json:"chanel_id"`
	Text                       string  `json:"text"`
	Picture                    *string `json:"picture"`
	LastViewedDestinationIndex int     `json:"last_viewed_destination_index"`
	CountOfDirectionsInPost    int     `json:"count_of_directions_in_post"`
}

// NewPost возвращает пост со значениями по умолчанию для служебных полей
func NewPost(name string, chanelID int, text string) Post {
	return Post{
		Name:                       name,
		ChanelID:                   chanelID,
		Text:                       text,
		LastViewedDestinationIndex: DefaultLastViewedDestinationIndex,
		CountOfDirectionsInPost:    DefaultCountOfDirectionsInPost,
	}
}
