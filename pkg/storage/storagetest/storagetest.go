// Package storagetest поднимает временную SQLite-базу со схемой сервиса для тестов
package storagetest

import (
	"context"
	"path/filepath"
	"testing"

	"tgpost_go/pkg/storage"
)

// DSN возвращает строку подключения к файлу SQLite во временном каталоге теста.
// Внешние ключи включает storage.Open
func DSN(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tgpost.db") + "?_pragma=busy_timeout(5000)"
}

// NewPool открывает пул к новой базе и создаёт в ней таблицы.
// Пул закрывается автоматически по завершении теста
func NewPool(t testing.TB) *storage.Pool {
	t.Helper()

	ctx := context.Background()
	pool, err := storage.Open(ctx, "sqlite", DSN(t), 0)
	if err != nil {
		t.Fatalf("не удалось открыть тестовую БД: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })

	if err := pool.EnsureSchema(ctx); err != nil {
		t.Fatalf("не удалось создать схему: %v", err)
	}
	return pool
}
