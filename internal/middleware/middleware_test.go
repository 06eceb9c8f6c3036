package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSAddsWildcardOriginToEveryResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS())
	router.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	router.GET("/fail", func(c *gin.Context) { c.JSON(http.StatusInternalServerError, gin.H{}) })

	for _, path := range []string{"/ok", "/fail", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("%s: missing wildcard CORS header", path)
		}
	}
}

func TestCORSAnswersPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS())
	router.POST("/queries", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/queries", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "OPTIONS,GET,POST" {
		t.Errorf("allowed methods = %q", got)
	}
	if body := w.Body.String(); body != `{"message":"OK"}` {
		t.Errorf("body = %s, want the same preflight body both modes return", body)
	}
}

func TestRecoveryReturnsGenericBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if body := w.Body.String(); body != `{"message":"Internal Server Error"}` {
		t.Errorf("body = %s", body)
	}
}
