package storage

import (
	"context"

	"tgpost_go/models"
)

func (db *DB) CreateCity(ctx context.Context, c models.City) (*models.City, error) {
	id, err := db.insert(ctx, `INSERT INTO cities (country_id, name, code) VALUES (?, ?, ?)`, c.CountryID, c.Name, c.Code)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return &c, nil
}

func (db *DB) GetCity(ctx context.Context, id int) (*models.City, error) {
	var c models.City
	err := db.queryRow(ctx, `SELECT id, country_id, name, code FROM cities WHERE id = ?`, id).
		Scan(&c.ID, &c.CountryID, &c.Name, &c.Code)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// ListCitiesByCountry возвращает города страны, упорядоченные по названию
func (db *DB) ListCitiesByCountry(ctx context.Context, countryID int) ([]models.City, error) {
	rows, err := db.query(ctx, `SELECT id, country_id, name, code FROM cities WHERE country_id = ? ORDER BY name`, countryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.CountryID, &c.Name, &c.Code); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}
