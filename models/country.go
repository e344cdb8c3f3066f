package models

// CountryCodeLen: длина кода страны (ISO 3166-1 alpha-2)
const CountryCodeLen = 2

// Country: справочник стран, код уникален
type Country struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
}
