// Package storage хранит каналы, страны, города и посты в реляционной БД.
//
// Типизированные методы (CreateChannel, CreatePost, ListCitiesByCountry и т. д.)
// используются API и страницами просмотра админки, а также доступны как
// библиотечный интерфейс для CLI и тестов. Обобщённые методы над Record
// обслуживают формы админки, которые работают с таблицами по описанию полей.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
)

// Querier: общий набор методов *sql.DB, *sql.Conn и *sql.Tx.
// Хранилище работает с любым из них, поэтому одни и те же запросы
// выполняются и в рамках запроса (сессии), и напрямую через пул
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB выполняет запросы к таблицам сервиса через выбранное соединение
type DB struct {
	Conn    Querier
	Dialect Dialect

	release func() error
}

func NewDB(conn Querier, dialect Dialect) *DB {
	return &DB{Conn: conn, Dialect: dialect}
}

// Close возвращает соединение сессии в пул. Для DB, созданной через NewDB, ничего не делает
func (db *DB) Close() error {
	if db.release == nil {
		return nil
	}
	release := db.release
	db.release = nil
	return release()
}

// Pool: общий для процесса пул соединений.
// Обработчики не обращаются к нему напрямую, а берут отдельную сессию на время запроса
type Pool struct {
	SQL     *sql.DB
	Dialect Dialect
}

// NewPool оборачивает уже открытое подключение
func NewPool(conn *sql.DB, dialect Dialect) *Pool {
	return &Pool{SQL: conn, Dialect: dialect}
}

// Open открывает подключение через зарегистрированный драйвер и проверяет его пингом.
// Имя драйвера определяет диалект SQL: postgres и pgx дают PostgreSQL, sqlite даёт SQLite, mysql даёт MySQL
func Open(ctx context.Context, driver, dsn string, maxOpenConns int) (*Pool, error) {
	dialect, err := DialectForDriver(driver)
	if err != nil {
		return nil, err
	}

	if dialect == SQLite {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if maxOpenConns > 0 {
		conn.SetMaxOpenConns(maxOpenConns)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	log.Printf("[DB] подключение установлено (driver=%s, dialect=%s)", driver, dialect)
	return NewPool(conn, dialect), nil
}

// sqliteDSN включает проверку внешних ключей, если DSN её не задаёт.
// Без PRAGMA foreign_keys SQLite не выполняет ON DELETE CASCADE и пропускает ссылки на несуществующие строки
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// Session выделяет отдельное соединение из пула.
// Вызывающий обязан закрыть DB, иначе соединение не вернётся в пул
func (p *Pool) Session(ctx context.Context) (*DB, error) {
	conn, err := p.SQL.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return &DB{Conn: conn, Dialect: p.Dialect, release: conn.Close}, nil
}

// DB возвращает хранилище, работающее напрямую через пул (для CLI и тестов)
func (p *Pool) DB() *DB {
	return NewDB(p.SQL, p.Dialect)
}

func (p *Pool) Close() error {
	return p.SQL.Close()
}

// insert выполняет INSERT и возвращает сгенерированный id.
// lib/pq и pgx не поддерживают LastInsertId, поэтому для PostgreSQL используется RETURNING
func (db *DB) insert(ctx context.Context, query string, args ...any) (int, error) {
	if db.Dialect == Postgres {
		var id int
		err := db.Conn.QueryRowContext(ctx, db.Dialect.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	res, err := db.Conn.ExecContext(ctx, db.Dialect.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.Conn.ExecContext(ctx, db.Dialect.Rebind(query), args...)
}

func (db *DB) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.Conn.QueryContext(ctx, db.Dialect.Rebind(query), args...)
}

func (db *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.Conn.QueryRowContext(ctx, db.Dialect.Rebind(query), args...)
}
