package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page описывает текущую страницу списка
type Page struct {
	Number     int
	Size       int
	TotalRows  int
	TotalPages int
}

// pageFromQuery читает page и pageSize из запроса, некорректные значения заменяются умолчаниями
func pageFromQuery(c *gin.Context) Page {
	page, _ := strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	switch {
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	case pageSize <= 0:
		pageSize = DefaultPageSize
	}

	return Page{Number: page, Size: pageSize}
}

func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// withTotal дополняет страницу общим числом строк.
// Номер за пределами списка сводится к последней странице, поэтому Offset не переполняется
func (p Page) withTotal(total int) Page {
	p.TotalRows = total
	p.TotalPages = 0
	if total > 0 {
		p.TotalPages = (total + p.Size - 1) / p.Size
	}
	if p.Number > p.TotalPages {
		p.Number = max(p.TotalPages, 1)
	}
	return p
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) Prev() int     { return p.Number - 1 }
func (p Page) Next() int     { return p.Number + 1 }
