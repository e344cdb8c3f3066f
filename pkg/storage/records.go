package storage

import (
	"context"
	"fmt"
	"strings"
)

// Record: строка таблицы в виде колонка → значение.
// Используется админкой, которая работает с таблицами без знания их Go-типов.
// Имена таблиц и колонок приходят только из зарегистрированных представлений, а не из запроса
type Record map[string]any

// Option: пара id/подпись для выпадающих списков внешних ключей
type Option struct {
	ID    int
	Label string
}

// CountRecords возвращает количество строк в таблице
func (db *DB) CountRecords(ctx context.Context, table string) (int, error) {
	var n int
	if err := db.queryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ListRecords возвращает страницу строк, упорядоченную по id
func (db *DB) ListRecords(ctx context.Context, table string, columns []string, offset, limit int) ([]Record, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id LIMIT ? OFFSET ?`, strings.Join(columns, ", "), table)
	rows, err := db.query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows, columns)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// GetRecord возвращает строку по id или ErrNotFound
func (db *DB) GetRecord(ctx context.Context, table string, columns []string, id int) (Record, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, strings.Join(columns, ", "), table)
	rows, err := db.query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanRecord(rows, columns)
}

// InsertRecord добавляет строку и возвращает её id
func (db *DB) InsertRecord(ctx context.Context, table string, columns []string, values []any) (int, error) {
	if len(columns) != len(values) {
		return 0, fmt.Errorf("insert into %s: %d columns, %d values", table, len(columns), len(values))
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	q := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, table, strings.Join(columns, ", "), marks)
	return db.insert(ctx, q, values...)
}

// UpdateRecord перезаписывает перечисленные колонки строки.
// Отсутствие строки с таким id возвращает ErrNotFound
func (db *DB) UpdateRecord(ctx context.Context, table string, id int, columns []string, values []any) error {
	if len(columns) != len(values) {
		return fmt.Errorf("update %s: %d columns, %d values", table, len(columns), len(values))
	}
	sets := make([]string, len(columns))
	for i, col := range columns {
		sets[i] = col + " = ?"
	}
	q := fmt.Sprintf(`UPDATE %s SET %s WHERE id = ?`, table, strings.Join(sets, ", "))
	args := append(append(make([]any, 0, len(values)+1), values...), id)

	// MySQL считает только реально изменённые строки, поэтому существование проверяем отдельно
	if db.Dialect == MySQL {
		if err := db.recordExists(ctx, table, id); err != nil {
			return err
		}
		_, err := db.exec(ctx, q, args...)
		return err
	}

	res, err := db.exec(ctx, q, args...)
	if err != nil {
		return err
	}
	return requireAffected(res.RowsAffected())
}

// DeleteRecord удаляет строку. Зависимые строки удаляет сама БД (ON DELETE CASCADE)
func (db *DB) DeleteRecord(ctx context.Context, table string, id int) error {
	res, err := db.exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if err != nil {
		return err
	}
	return requireAffected(res.RowsAffected())
}

// ListOptions возвращает все строки таблицы как варианты выбора для внешнего ключа
func (db *DB) ListOptions(ctx context.Context, table, labelColumn string) ([]Option, error) {
	rows, err := db.query(ctx, fmt.Sprintf(`SELECT id, %s FROM %s ORDER BY id`, labelColumn, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []Option
	for rows.Next() {
		var opt Option
		if err := rows.Scan(&opt.ID, &opt.Label); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func (db *DB) recordExists(ctx context.Context, table string, id int) error {
	var one int
	err := db.queryRow(ctx, fmt.Sprintf(`SELECT 1 FROM %s WHERE id = ?`, table), id).Scan(&one)
	return notFound(err)
}

func requireAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanRecord читает текущую строку. MySQL отдаёт строки как []byte, приводим их к string
func scanRecord(rows interface{ Scan(...any) error }, columns []string) (Record, error) {
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	rec := make(Record, len(columns))
	for i, col := range columns {
		if b, ok := values[i].([]byte); ok {
			rec[col] = string(b)
			continue
		}
		rec[col] = values[i]
	}
	return rec, nil
}
