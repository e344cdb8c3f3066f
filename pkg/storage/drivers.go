package storage

// Драйверы регистрируются здесь, чтобы любой из них можно было выбрать в конфигурации
import (
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)
