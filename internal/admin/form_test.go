package admin

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		raw     string
		want    any
		wantErr string
	}{
		{name: "string", field: Field{Kind: String, MaxLen: 3}, raw: "абв", want: "абв"},
		{name: "string too long", field: Field{Kind: String, MaxLen: 3}, raw: "абвг", wantErr: "не более 3 символов"},
		{name: "required", field: Field{Kind: String, Required: true}, raw: "  ", wantErr: "обязательное поле"},
		{name: "nullable empty", field: Field{Kind: NullableString}, raw: "", want: nil},
		{name: "integer", field: Field{Kind: Integer}, raw: " -1 ", want: -1},
		{name: "integer invalid", field: Field{Kind: Integer}, raw: "x", wantErr: "ожидается целое число"},
		{name: "foreign key", field: Field{Kind: ForeignKey, Required: true}, raw: "7", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			got, err := parseValue(tt.field, tt.raw)
			if tt.wantErr != "" {
				c.Assert(err, qt.ErrorMatches, tt.wantErr)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, tt.want)
		})
	}
}

func TestFormatValue(t *testing.T) {
	c := qt.New(t)
	c.Assert(formatValue(nil), qt.Equals, "")
	c.Assert(formatValue([]byte("abc")), qt.Equals, "abc")
	c.Assert(formatValue(int64(-1)), qt.Equals, "-1")
	c.Assert(formatValue("текст"), qt.Equals, "текст")
}

func TestPageFromQuery(t *testing.T) {
	tests := []struct {
		query    string
		wantNum  int
		wantSize int
	}{
		{query: "", wantNum: 1, wantSize: DefaultPageSize},
		{query: "?page=3&pageSize=5", wantNum: 3, wantSize: 5},
		{query: "?page=-1&pageSize=1000", wantNum: 1, wantSize: MaxPageSize},
		{query: "?page=x&pageSize=y", wantNum: 1, wantSize: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c := qt.New(t)
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest(http.MethodGet, "/admin/channel/list"+tt.query, nil)

			p := pageFromQuery(ctx)
			c.Assert(p.Number, qt.Equals, tt.wantNum)
			c.Assert(p.Size, qt.Equals, tt.wantSize)
		})
	}
}

func TestPageWithTotal(t *testing.T) {
	c := qt.New(t)

	p := Page{Number: 2, Size: 20}.withTotal(41)
	c.Assert(p.TotalPages, qt.Equals, 3)
	c.Assert(p.Offset(), qt.Equals, 20)
	c.Assert(p.HasPrev(), qt.IsTrue)
	c.Assert(p.HasNext(), qt.IsTrue)

	empty := Page{Number: 1, Size: 20}.withTotal(0)
	c.Assert(empty.TotalPages, qt.Equals, 0)
	c.Assert(empty.HasNext(), qt.IsFalse)
}

func TestPageWithTotalClampsNumber(t *testing.T) {
	c := qt.New(t)

	p := Page{Number: math.MaxInt, Size: 20}.withTotal(41)
	c.Assert(p.Number, qt.Equals, 3)
	c.Assert(p.Offset(), qt.Equals, 40)
	c.Assert(p.HasNext(), qt.IsFalse)

	empty := Page{Number: math.MaxInt, Size: 20}.withTotal(0)
	c.Assert(empty.Number, qt.Equals, 1)
	c.Assert(empty.Offset(), qt.Equals, 0)
}

func TestAddViewDuplicatePanics(t *testing.T) {
	c := qt.New(t)
	a := New("Админка", ChannelView())
	c.Assert(func() { a.AddView(ChannelView()) }, qt.PanicMatches, `admin: view "channel" already registered`)
	c.Assert(a.Views(), qt.HasLen, 1)
	c.Assert(a.Views()[0].Fields[1].Label, qt.Equals, "Channel Chat Id")
}
