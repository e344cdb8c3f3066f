package storage

import (
	"context"

	"tgpost_go/models"
)

func (db *DB) CreateCountry(ctx context.Context, c models.Country) (*models.Country, error) {
	id, err := db.insert(ctx, `INSERT INTO countries (code) VALUES (?)`, c.Code)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return &c, nil
}

func (db *DB) GetCountry(ctx context.Context, id int) (*models.Country, error) {
	var c models.Country
	if err := db.queryRow(ctx, `SELECT id, code FROM countries WHERE id = ?`, id).Scan(&c.ID, &c.Code); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}
