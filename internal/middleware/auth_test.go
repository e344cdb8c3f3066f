package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
)

func newAuthRouter(username, password string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/", AuthRequired(username, password), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestAuthRequiredDisabled(t *testing.T) {
	c := qt.New(t)
	r := newAuthRouter("", "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/", nil))
	c.Assert(w.Code, qt.Equals, http.StatusOK)
}

func TestAuthRequiredBasic(t *testing.T) {
	c := qt.New(t)
	r := newAuthRouter("admin", "secret")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/", nil))
	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.SetBasicAuth("admin", "secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusOK)
}

func TestRequestID(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(ctx *gin.Context) {
		seen = GetRequestID(ctx)
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	c.Assert(seen, qt.Not(qt.Equals), "")
	c.Assert(w.Header().Get(RequestIDHeader), qt.Equals, seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Header().Get(RequestIDHeader), qt.Equals, "abc")
}
