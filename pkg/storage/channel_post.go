package storage

import (
	"context"
	"database/sql"
	"log"

	"tgpost_go/models"
)

// CreatePost сохраняет пост канала как есть, значения по умолчанию задаёт models.NewPost.
// Количество направлений вне диапазона 1–4 отклоняет CHECK-ограничение таблицы posts
func (db *DB) CreatePost(ctx context.Context, p models.Post) (*models.Post, error) {
	id, err := db.insert(ctx, `INSERT INTO posts (name, chanel_id, text, picture, last_viewed_destination_index, count_of_directions_in_post) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Name, p.ChanelID, p.Text, p.Picture, p.LastViewedDestinationIndex, p.CountOfDirectionsInPost)
	if err != nil {
		log.Printf("[DB ERROR] сохранение поста: %v", err)
		return nil, err
	}
	return db.GetPost(ctx, id)
}

// GetPost возвращает пост по id или ErrNotFound
func (db *DB) GetPost(ctx context.Context, id int) (*models.Post, error) {
	var p models.Post
	var picture sql.NullString
	err := db.queryRow(ctx, `
		SELECT id, name, chanel_id, text, picture, last_viewed_destination_index, count_of_directions_in_post
		FROM posts
		WHERE id = ?`, id).Scan(
		&p.ID,
		&p.Name,
		&p.ChanelID,
		&p.Text,
		&picture,
		&p.LastViewedDestinationIndex,
		&p.CountOfDirectionsInPost,
	)
	if err != nil {
		return nil, notFound(err)
	}
	if picture.Valid {
		p.Picture = &picture.String
	}
	return &p, nil
}

// ListPostsByChannel возвращает посты канала в порядке добавления
func (db *DB) ListPostsByChannel(ctx context.Context, chanelID int) ([]models.Post, error) {
	rows, err := db.query(ctx, `
		SELECT id, name, chanel_id, text, picture, last_viewed_destination_index, count_of_directions_in_post
		FROM posts
		WHERE chanel_id = ?
		ORDER BY id`, chanelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		var picture sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.ChanelID, &p.Text, &picture, &p.LastViewedDestinationIndex, &p.CountOfDirectionsInPost); err != nil {
			return nil, err
		}
		if picture.Valid {
			p.Picture = &picture.String
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
