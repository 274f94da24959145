package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/auvet/auvet-backend/internal/infrastructure/config"
	"github.com/auvet/auvet-backend/internal/infrastructure/logging"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(allowed string) *gin.Engine {
		router := gin.New()
		router.Use(CORS((&config.CORSConfig{AllowedOrigins: allowed}).Origins()))
		router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		return router
	}

	t.Run("libera todas as origens com *", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://qualquer.vet")
		newRouter("*").ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("esperava '*', obteve '%s'", got)
		}
	})

	t.Run("aceita origem da lista", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://clinica.vet")
		newRouter("http://clinica.vet,http://admin.vet").ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://clinica.vet" {
			t.Errorf("esperava 'http://clinica.vet', obteve '%s'", got)
		}
	})

	t.Run("rejeita origem fora da lista", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://intruso.vet")
		newRouter("http://clinica.vet").ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}
	})

	t.Run("responde preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://clinica.vet")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		newRouter("*").ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("esperava status 204, obteve %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDContextKey))
	})

	t.Run("gera um UUID quando ausente", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("esperava UUID válido, obteve '%s'", id)
		}
		if w.Body.String() != id {
			t.Errorf("contexto e header divergem: '%s' != '%s'", w.Body.String(), id)
		}
	})

	t.Run("reaproveita o header recebido", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		router.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("esperava 'abc-123', obteve '%s'", got)
		}
	})
}

func TestRequestLoggerAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := logging.NewSlogLoggerWithWriter("debug", &buf)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger), Recovery(logger, func(c *gin.Context) any {
		return gin.H{"success": false, "error": "Erro interno do servidor"}
	}))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("panic vira 500 com envelope", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("esperava status 500, obteve %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"success":false`) {
			t.Errorf("corpo inesperado: %s", w.Body.String())
		}
		if !strings.Contains(buf.String(), "panic recovered") {
			t.Errorf("esperava log do panic, obteve: %s", buf.String())
		}
	})

	t.Run("registra a requisição", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		out := buf.String()
		if !strings.Contains(out, `"path":"/ok"`) || !strings.Contains(out, `"status":200`) {
			t.Errorf("log de acesso incompleto: %s", out)
		}
	})
}
