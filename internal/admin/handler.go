package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"tgpost_go/internal/middleware"
	"tgpost_go/pkg/storage"
)

type row struct {
	ID    int
	Cells []string
}

type detail struct {
	Label string
	Value string
}

// relatedBlock: дочерние записи на странице просмотра (посты канала, города страны)
type relatedBlock struct {
	Title    string
	Identity string
	Items    []relatedItem
}

type relatedItem struct {
	ID    int
	Label string
}

// Index показывает список зарегистрированных таблиц
func (a *Admin) Index(c *gin.Context) {
	a.render(c, http.StatusOK, "index.html", gin.H{})
}

// List показывает страницу строк таблицы
func (a *Admin) List(c *gin.Context) {
	v, ok := a.lookupView(c)
	if !ok {
		return
	}
	db := middleware.Session(c)
	ctx := c.Request.Context()

	total, err := db.CountRecords(ctx, v.Table)
	if err != nil {
		a.serverError(c, "подсчёт строк "+v.Table, err)
		return
	}
	page := pageFromQuery(c).withTotal(total)

	records, err := db.ListRecords(ctx, v.Table, v.columns(), page.Offset(), page.Size)
	if err != nil {
		a.serverError(c, "выборка строк "+v.Table, err)
		return
	}

	rows := make([]row, 0, len(records))
	for _, rec := range records {
		r := row{ID: recordID(rec)}
		for _, f := range v.Fields {
			r.Cells = append(r.Cells, formatValue(rec[f.Column]))
		}
		rows = append(rows, r)
	}

	a.render(c, http.StatusOK, "list.html", gin.H{"View": v, "Rows": rows, "Page": page})
}

// Details показывает одну строку
func (a *Admin) Details(c *gin.Context) {
	v, id, ok := a.lookupRecord(c)
	if !ok {
		return
	}

	rec, err := middleware.Session(c).GetRecord(c.Request.Context(), v.Table, v.columns(), id)
	if err != nil {
		a.recordError(c, v, id, err)
		return
	}

	details := []detail{{Label: "Id", Value: strconv.Itoa(id)}}
	for _, f := range v.Fields {
		details = append(details, detail{Label: f.Label, Value: formatValue(rec[f.Column])})
	}
	rel, err := a.related(c, v, id)
	if err != nil {
		a.serverError(c, "дочерние записи "+v.Table, err)
		return
	}
	a.render(c, http.StatusOK, "details.html", gin.H{"View": v, "ID": id, "Details": details, "Related": rel})
}

// related собирает записи, которые удалятся каскадом вместе с текущей.
// Блок показывается, только если представление дочерней таблицы зарегистрировано
func (a *Admin) related(c *gin.Context, v *View, id int) (*relatedBlock, error) {
	db := middleware.Session(c)
	ctx := c.Request.Context()

	switch v.Table {
	case "channels":
		child, ok := a.viewByTable("posts")
		if !ok {
			return nil, nil
		}
		posts, err := db.ListPostsByChannel(ctx, id)
		if err != nil {
			return nil, err
		}
		block := &relatedBlock{Title: child.NamePlural, Identity: child.Identity}
		for _, p := range posts {
			block.Items = append(block.Items, relatedItem{ID: p.ID, Label: p.Name})
		}
		return block, nil
	case "countries":
		child, ok := a.viewByTable("cities")
		if !ok {
			return nil, nil
		}
		cities, err := db.ListCitiesByCountry(ctx, id)
		if err != nil {
			return nil, err
		}
		block := &relatedBlock{Title: child.NamePlural, Identity: child.Identity}
		for _, city := range cities {
			block.Items = append(block.Items, relatedItem{ID: city.ID, Label: city.Name})
		}
		return block, nil
	}
	return nil, nil
}

// CreateForm показывает пустую форму создания
func (a *Admin) CreateForm(c *gin.Context) {
	v, ok := a.lookupView(c)
	if !ok {
		return
	}
	a.renderForm(c, http.StatusOK, v, 0, emptyForm(v))
}

// Create сохраняет новую строку и возвращает на список
func (a *Admin) Create(c *gin.Context) {
	v, ok := a.lookupView(c)
	if !ok {
		return
	}

	columns, values, f := parseForm(c, v)
	if !f.valid() {
		a.renderForm(c, http.StatusBadRequest, v, 0, f)
		return
	}

	id, err := middleware.Session(c).InsertRecord(c.Request.Context(), v.Table, columns, values)
	if err != nil {
		if a.rejected(c, v, 0, f, err) {
			return
		}
		a.serverError(c, "создание строки "+v.Table, err)
		return
	}

	log.Printf("[ADMIN] %s: создана запись %d", v.Table, id)
	c.Redirect(http.StatusFound, a.listURL(v))
}

// EditForm показывает форму редактирования строки
func (a *Admin) EditForm(c *gin.Context) {
	v, id, ok := a.lookupRecord(c)
	if !ok {
		return
	}

	rec, err := middleware.Session(c).GetRecord(c.Request.Context(), v.Table, v.columns(), id)
	if err != nil {
		a.recordError(c, v, id, err)
		return
	}
	a.renderForm(c, http.StatusOK, v, id, recordForm(v, rec))
}

// Edit сохраняет изменения строки
func (a *Admin) Edit(c *gin.Context) {
	v, id, ok := a.lookupRecord(c)
	if !ok {
		return
	}

	columns, values, f := parseForm(c, v)
	if !f.valid() {
		a.renderForm(c, http.StatusBadRequest, v, id, f)
		return
	}

	if err := middleware.Session(c).UpdateRecord(c.Request.Context(), v.Table, id, columns, values); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.recordError(c, v, id, err)
			return
		}
		if a.rejected(c, v, id, f, err) {
			return
		}
		a.serverError(c, "изменение строки "+v.Table, err)
		return
	}

	log.Printf("[ADMIN] %s: изменена запись %d", v.Table, id)
	c.Redirect(http.StatusFound, a.listURL(v))
}

// Delete удаляет строку вместе с зависимыми записями
func (a *Admin) Delete(c *gin.Context) {
	v, id, ok := a.lookupRecord(c)
	if !ok {
		return
	}

	if err := middleware.Session(c).DeleteRecord(c.Request.Context(), v.Table, id); err != nil {
		a.recordError(c, v, id, err)
		return
	}

	log.Printf("[ADMIN] %s: удалена запись %d", v.Table, id)
	c.Redirect(http.StatusFound, a.listURL(v))
}

func (a *Admin) lookupView(c *gin.Context) (*View, bool) {
	v, ok := a.view(c.Param("view"))
	if !ok {
		a.renderError(c, http.StatusNotFound, "Раздел не найден")
		return nil, false
	}
	return v, true
}

func (a *Admin) lookupRecord(c *gin.Context) (*View, int, bool) {
	v, ok := a.lookupView(c)
	if !ok {
		return nil, 0, false
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		a.renderError(c, http.StatusNotFound, "Запись не найдена")
		return nil, 0, false
	}
	return v, id, true
}

// rejected показывает форму с сообщением, если БД отклонила запись из-за ограничения
func (a *Admin) rejected(c *gin.Context, v *View, id int, f *form, err error) bool {
	if !storage.IsConstraintViolation(err) {
		return false
	}
	log.Printf("[ADMIN WARN] [%s] %s: нарушено ограничение %q: %v", middleware.GetRequestID(c), v.Table, storage.ConstraintName(err), err)
	f.Error = "Нарушено ограничение базы данных: " + err.Error()
	a.renderForm(c, http.StatusBadRequest, v, id, f)
	return true
}

func (a *Admin) recordError(c *gin.Context, v *View, id int, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		a.renderError(c, http.StatusNotFound, "Запись не найдена")
		return
	}
	a.serverError(c, v.Table+" #"+strconv.Itoa(id), err)
}

func (a *Admin) serverError(c *gin.Context, what string, err error) {
	log.Printf("[ADMIN ERROR] [%s] %s: %v", middleware.GetRequestID(c), what, err)
	a.renderError(c, http.StatusInternalServerError, "Ошибка базы данных")
}

func (a *Admin) renderForm(c *gin.Context, status int, v *View, id int, f *form) {
	options := make(map[string][]storage.Option)
	for _, field := range v.Fields {
		if !field.IsSelect() {
			continue
		}
		opts, err := middleware.Session(c).ListOptions(c.Request.Context(), field.Ref, field.RefLabel)
		if err != nil {
			a.serverError(c, "варианты для "+field.Column, err)
			return
		}
		options[field.Column] = opts
	}

	a.render(c, status, "form.html", gin.H{
		"View":    v,
		"ID":      id,
		"Values":  f.Values,
		"Errors":  f.Errors,
		"Error":   f.Error,
		"Options": options,
	})
}

func (a *Admin) renderError(c *gin.Context, status int, msg string) {
	a.render(c, status, "error.html", gin.H{"Status": status, "Message": msg})
	c.Abort()
}

func (a *Admin) render(c *gin.Context, status int, name string, data gin.H) {
	data["Title"] = a.Title
	data["Base"] = a.base
	data["Views"] = a.views
	c.Render(status, render.HTML{Template: a.templates, Name: name, Data: data})
}

func (a *Admin) listURL(v *View) string {
	return a.base + "/" + v.Identity + "/list"
}

func recordID(rec storage.Record) int {
	id, _ := strconv.Atoi(formatValue(rec["id"]))
	return id
}
