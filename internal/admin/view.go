package admin

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tgpost_go/models"
)

// FieldKind определяет, как поле показывается в форме и как разбирается его значение
type FieldKind int

const (
	String FieldKind = iota
	Text
	Integer
	NullableString
	ForeignKey
)

// Field: редактируемая колонка таблицы
type Field struct {
	Column   string
	Label    string
	Kind     FieldKind
	MaxLen   int
	Required bool

	// Default подставляется в пустую форму создания
	Default string

	// Ref и RefLabel задают таблицу и колонку подписи для внешнего ключа
	Ref      string
	RefLabel string

	// Min и Max попадают только в атрибуты HTML-поля, диапазон проверяет БД
	Min string
	Max string
}

func (f Field) IsSelect() bool { return f.Kind == ForeignKey }
func (f Field) IsText() bool   { return f.Kind == Text }

func (f Field) InputType() string {
	if f.Kind == Integer {
		return "number"
	}
	return "text"
}

// View: зарегистрированная в админке таблица
type View struct {
	Identity   string
	Table      string
	Name       string
	NamePlural string
	Fields     []Field
}

// columns возвращает колонки для выборки: id и все поля представления
func (v *View) columns() []string {
	cols := make([]string, 0, len(v.Fields)+1)
	cols = append(cols, "id")
	for _, f := range v.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

// withLabels заполняет пустые подписи из имён колонок: channel_chat_id → Channel Chat Id
func (v View) withLabels() View {
	caser := cases.Title(language.Und)
	fields := make([]Field, len(v.Fields))
	for i, f := range v.Fields {
		if f.Label == "" {
			f.Label = caser.String(strings.ReplaceAll(f.Column, "_", " "))
		}
		fields[i] = f
	}
	v.Fields = fields
	if v.NamePlural == "" {
		v.NamePlural = v.Name
	}
	return v
}

// ChannelView: каналы телеграм
func ChannelView() View {
	return View{
		Identity:   "channel",
		Table:      "channels",
		Name:       "Каналы телеграм",
		NamePlural: "Каналы телеграм",
		Fields: []Field{
			{Column: "name", Kind: String, MaxLen: models.ChannelNameMaxLen, Required: true},
			{Column: "channel_chat_id", Kind: String, MaxLen: models.ChannelChatIDMaxLen, Required: true},
		},
	}
}

// CountryView: справочник стран
func CountryView() View {
	return View{
		Identity:   "country",
		Table:      "countries",
		Name:       "Страна",
		NamePlural: "Страны",
		Fields: []Field{
			{Column: "code", Kind: String, MaxLen: models.CountryCodeLen, Required: true},
		},
	}
}

// CityView: города, страна выбирается из списка по коду
func CityView() View {
	return View{
		Identity:   "city",
		Table:      "cities",
		Name:       "Город",
		NamePlural: "Города",
		Fields: []Field{
			{Column: "country_id", Kind: ForeignKey, Required: true, Ref: "countries", RefLabel: "code"},
			{Column: "name", Kind: String, MaxLen: models.CityNameMaxLen, Required: true},
			{Column: "code", Kind: String, MaxLen: models.CityCodeLen, Required: true},
		},
	}
}

// PostView: посты каналов
func PostView() View {
	return View{
		Identity:   "post",
		Table:      "posts",
		Name:       "Пост",
		NamePlural: "Посты",
		Fields: []Field{
			{Column: "name", Kind: String, MaxLen: models.PostNameMaxLen, Required: true},
			{Column: "chanel_id", Kind: ForeignKey, Required: true, Ref: "channels", RefLabel: "name"},
			{Column: "text", Kind: Text, Required: true},
			{Column: "picture", Kind: NullableString, MaxLen: 255},
			{Column: "last_viewed_destination_index", Kind: Integer, Required: true, Default: "-1"},
			{
				Column:   "count_of_directions_in_post",
				Kind:     Integer,
				Required: true,
				Default:  "4",
				Min:      "1",
				Max:      "4",
			},
		},
	}
}

// DefaultViews возвращает все таблицы сервиса в порядке показа в меню
func DefaultViews() []View {
	return []View{ChannelView(), CountryView(), CityView(), PostView()}
}
