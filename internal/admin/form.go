package admin

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"tgpost_go/pkg/storage"
)

// form хранит введённые значения и ошибки, чтобы показать форму повторно
type form struct {
	Values map[string]string
	Errors map[string]string
	Error  string
}

func (f *form) valid() bool { return len(f.Errors) == 0 }

// emptyForm заполняет форму создания значениями по умолчанию
func emptyForm(v *View) *form {
	f := &form{Values: map[string]string{}, Errors: map[string]string{}}
	for _, field := range v.Fields {
		if field.Default != "" {
			f.Values[field.Column] = field.Default
		}
	}
	return f
}

// recordForm переносит сохранённую строку в форму редактирования
func recordForm(v *View, rec storage.Record) *form {
	f := &form{Values: map[string]string{}, Errors: map[string]string{}}
	for _, field := range v.Fields {
		f.Values[field.Column] = formatValue(rec[field.Column])
	}
	return f
}

// parseForm разбирает POST-форму в значения колонок в порядке полей представления.
// Проверяются обязательность, длина строк в символах и числовой формат
func parseForm(c *gin.Context, v *View) ([]string, []any, *form) {
	f := &form{Values: map[string]string{}, Errors: map[string]string{}}
	columns := make([]string, 0, len(v.Fields))
	values := make([]any, 0, len(v.Fields))

	for _, field := range v.Fields {
		raw := c.PostForm(field.Column)
		f.Values[field.Column] = raw

		value, err := parseValue(field, raw)
		if err != nil {
			f.Errors[field.Column] = err.Error()
			continue
		}
		columns = append(columns, field.Column)
		values = append(values, value)
	}
	return columns, values, f
}

func parseValue(field Field, raw string) (any, error) {
	if strings.TrimSpace(raw) == "" {
		if field.Required {
			return nil, fmt.Errorf("обязательное поле")
		}
		return nil, nil
	}

	switch field.Kind {
	case Integer, ForeignKey:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("ожидается целое число")
		}
		return n, nil
	default:
		if field.MaxLen > 0 && utf8.RuneCountInString(raw) > field.MaxLen {
			return nil, fmt.Errorf("не более %d символов", field.MaxLen)
		}
		return raw, nil
	}
}

// formatValue приводит значение из БД к строке для HTML
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}
