package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingController struct{}

func (pingController) Register(route *gin.RouterGroup) {
	route.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(ContextRequestID))
	})
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Config{
		BaseURL:     "/api",
		Controllers: []i.Controller{pingController{}},
		Middlewares: []gin.HandlerFunc{RequestID()},
	}).Engine()
}

func TestRouter(t *testing.T) {
	engine := newTestRouter()

	t.Run("routes live under the versioned base URL", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	engine := newTestRouter()

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)

		id, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		require.NoError(t, err)
		assert.Equal(t, id.String(), w.Body.String())
	})

	t.Run("kept when well formed", func(t *testing.T) {
		sent := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		req.Header.Set(RequestIDHeader, sent)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, sent, w.Header().Get(RequestIDHeader))
		assert.Equal(t, sent, w.Body.String())
	})

	t.Run("replaced when malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		got := w.Header().Get(RequestIDHeader)
		assert.NotEqual(t, "not-a-uuid", got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})
}
