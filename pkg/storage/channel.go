package storage

import (
	"context"
	"log"

	"tgpost_go/models"
)

// CreateChannel сохраняет канал и перечитывает его из БД, чтобы вернуть сгенерированный id
func (db *DB) CreateChannel(ctx context.Context, ch models.Channel) (*models.Channel, error) {
	id, err := db.insert(ctx, `INSERT INTO channels (name, channel_chat_id) VALUES (?, ?)`, ch.Name, ch.ChannelChatID)
	if err != nil {
		log.Printf("[DB ERROR] сохранение канала: %v", err)
		return nil, err
	}
	return db.GetChannel(ctx, id)
}

// GetChannel возвращает канал по id или ErrNotFound
func (db *DB) GetChannel(ctx context.Context, id int) (*models.Channel, error) {
	var ch models.Channel
	err := db.queryRow(ctx, `SELECT id, name, channel_chat_id FROM channels WHERE id = ?`, id).
		Scan(&ch.ID, &ch.Name, &ch.ChannelChatID)
	if err != nil {
		return nil, notFound(err)
	}
	return &ch, nil
}

// ListChannels возвращает страницу каналов в порядке добавления.
// Пустая таблица даёт пустой срез, а не nil, чтобы API отвечал []
func (db *DB) ListChannels(ctx context.Context, skip, limit int) ([]models.Channel, error) {
	rows, err := db.query(ctx, `SELECT id, name, channel_chat_id FROM channels ORDER BY id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	channels := make([]models.Channel, 0, min(limit, 100))
	for rows.Next() {
		var ch models.Channel
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.ChannelChatID); err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return channels, nil
}
