package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
)

type sample struct {
	Name  string `json:"name" binding:"required,max=3"`
	Count int    `json:"count" binding:"min=1"`
}

func TestValidationDetailsUsesJSONNames(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)
	UseJSONFieldNames()

	r := gin.New()
	r.POST("/", func(ctx *gin.Context) {
		var in sample
		if err := ctx.ShouldBindJSON(&in); err != nil {
			RespondValidationError(ctx, SourceBody, err)
			return
		}
		ctx.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"long","count":0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusUnprocessableEntity)

	var body struct {
		Detail []FieldError `json:"detail"`
	}
	c.Assert(json.Unmarshal(w.Body.Bytes(), &body), qt.IsNil)
	c.Assert(body.Detail, qt.HasLen, 2)
	c.Assert(body.Detail[0].Loc, qt.DeepEquals, []string{"body", "name"})
	c.Assert(body.Detail[0].Type, qt.Equals, "max")
	c.Assert(body.Detail[0].Msg, qt.Equals, "ensure this value has at most 3 characters")
	c.Assert(body.Detail[1].Loc, qt.DeepEquals, []string{"body", "count"})
}

func TestValidationDetailsForParseError(t *testing.T) {
	c := qt.New(t)

	details := ValidationDetails(SourceQuery, errors.New("strconv.ParseInt: parsing \"x\": invalid syntax"))
	c.Assert(details, qt.HasLen, 1)
	c.Assert(details[0].Loc, qt.DeepEquals, []string{"query"})
	c.Assert(details[0].Type, qt.Equals, "invalid")
}

func TestRespondError(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	RespondError(ctx, http.StatusInternalServerError, "db error")

	c.Assert(w.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(w.Body.String(), qt.JSONEquals, map[string]string{"error": "db error"})
	c.Assert(ctx.IsAborted(), qt.IsTrue)
}
