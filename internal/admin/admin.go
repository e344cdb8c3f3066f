// Package admin: веб-панель для прямого редактирования таблиц сервиса.
// Каждая таблица регистрируется как View, страницы списка, просмотра, создания,
// редактирования и удаления строятся по описанию её полей
package admin

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/go-extras/go-kit/must"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Admin хранит зарегистрированные представления и шаблоны страниц
type Admin struct {
	Title string

	base       string
	views      []*View
	byIdentity map[string]*View
	templates  *template.Template
}

// New создаёт панель с заголовком и набором представлений
func New(title string, views ...View) *Admin {
	a := &Admin{
		Title:      title,
		byIdentity: make(map[string]*View),
		templates:  must.Must(template.New("admin").ParseFS(templatesFS, "templates/*.html")),
	}
	for _, v := range views {
		a.AddView(v)
	}
	return a
}

// AddView регистрирует таблицу. Повторная регистрация того же identity считается ошибкой конфигурации
func (a *Admin) AddView(v View) {
	if _, ok := a.byIdentity[v.Identity]; ok {
		panic(fmt.Sprintf("admin: view %q already registered", v.Identity))
	}
	view := v.withLabels()
	a.views = append(a.views, &view)
	a.byIdentity[view.Identity] = &view
}

// Views возвращает представления в порядке регистрации
func (a *Admin) Views() []*View {
	return a.views
}

func (a *Admin) view(identity string) (*View, bool) {
	v, ok := a.byIdentity[identity]
	return v, ok
}

func (a *Admin) viewByTable(table string) (*View, bool) {
	for _, v := range a.views {
		if v.Table == table {
			return v, true
		}
	}
	return nil, false
}
