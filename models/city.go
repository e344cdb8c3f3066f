package models

const (
	CityNameMaxLen = 100
	CityCodeLen    = 3
)

// City принадлежит стране и удаляется вместе с ней (ON DELETE CASCADE).
// Название и код города уникальны в пределах всей таблицы
type City struct {
	ID        int    `json:"id"`
	CountryID int    `json:"country_id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
}
