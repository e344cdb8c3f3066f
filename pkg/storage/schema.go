package storage

import (
	"context"
	"fmt"
	"log"
)

// Таблицы создаются при старте, если их ещё нет. Версионных миграций нет:
// схема только расширяется новыми таблицами.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS channels (
		id SERIAL PRIMARY KEY,
		name VARCHAR(20) NOT NULL,
		channel_chat_id VARCHAR(14) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS ix_channels_name ON channels (name)`,
	`CREATE TABLE IF NOT EXISTS countries (
		id SERIAL PRIMARY KEY,
		code VARCHAR(2) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS cities (
		id SERIAL PRIMARY KEY,
		country_id INTEGER NOT NULL REFERENCES countries (id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL UNIQUE,
		code VARCHAR(3) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id SERIAL PRIMARY KEY,
		name VARCHAR(40) NOT NULL,
		chanel_id INTEGER NOT NULL REFERENCES channels (id) ON DELETE CASCADE,
		text TEXT NOT NULL,
		picture VARCHAR(255),
		last_viewed_destination_index INTEGER NOT NULL DEFAULT -1,
		count_of_directions_in_post INTEGER NOT NULL DEFAULT 4,
		CONSTRAINT check_count_of_directions_in_post CHECK (count_of_directions_in_post BETWEEN 1 AND 4)
	)`,
}

// SQLite проверяет внешние ключи только с PRAGMA foreign_keys = ON,
// Open добавляет её в DSN сам
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS channels (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(20) NOT NULL,
		channel_chat_id VARCHAR(14) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS ix_channels_name ON channels (name)`,
	`CREATE TABLE IF NOT EXISTS countries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code VARCHAR(2) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS cities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		country_id INTEGER NOT NULL REFERENCES countries (id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL UNIQUE,
		code VARCHAR(3) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(40) NOT NULL,
		chanel_id INTEGER NOT NULL REFERENCES channels (id) ON DELETE CASCADE,
		text TEXT NOT NULL,
		picture VARCHAR(255),
		last_viewed_destination_index INTEGER NOT NULL DEFAULT -1,
		count_of_directions_in_post INTEGER NOT NULL DEFAULT 4,
		CONSTRAINT check_count_of_directions_in_post CHECK (count_of_directions_in_post BETWEEN 1 AND 4)
	)`,
}

// MySQL не поддерживает CREATE INDEX IF NOT EXISTS, индекс объявлен внутри таблицы.
// CHECK-ограничения соблюдаются начиная с MySQL 8.0.16
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS channels (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(20) NOT NULL,
		channel_chat_id VARCHAR(14) NOT NULL,
		INDEX ix_channels_name (name)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS countries (
		id INT AUTO_INCREMENT PRIMARY KEY,
		code VARCHAR(2) NOT NULL UNIQUE
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS cities (
		id INT AUTO_INCREMENT PRIMARY KEY,
		country_id INT NOT NULL,
		name VARCHAR(100) NOT NULL UNIQUE,
		code VARCHAR(3) NOT NULL UNIQUE,
		FOREIGN KEY (country_id) REFERENCES countries (id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS posts (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(40) NOT NULL,
		chanel_id INT NOT NULL,
		text TEXT NOT NULL,
		picture VARCHAR(255),
		last_viewed_destination_index INT NOT NULL DEFAULT -1,
		count_of_directions_in_post INT NOT NULL DEFAULT 4,
		FOREIGN KEY (chanel_id) REFERENCES channels (id) ON DELETE CASCADE,
		CONSTRAINT check_count_of_directions_in_post CHECK (count_of_directions_in_post BETWEEN 1 AND 4)
	) ENGINE=InnoDB`,
}

// SchemaStatements возвращает DDL для диалекта в порядке создания таблиц
func SchemaStatements(d Dialect) ([]string, error) {
	switch d {
	case Postgres:
		return postgresSchema, nil
	case SQLite:
		return sqliteSchema, nil
	case MySQL:
		return mysqlSchema, nil
	default:
		return nil, fmt.Errorf("no schema for dialect %q", d)
	}
}

// EnsureSchema создаёт недостающие таблицы и индексы
func (p *Pool) EnsureSchema(ctx context.Context) error {
	statements, err := SchemaStatements(p.Dialect)
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		if _, err := p.SQL.ExecContext(ctx, stmt); err != nil {
			log.Printf("[DB ERROR] создание схемы: %v", err)
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	log.Printf("[DB] схема готова (%d выражений)", len(statements))
	return nil
}
