package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingService struct{}

func (failingService) Build(context.Context, service.MazeRequest) (*service.MazeResult, error) {
	return nil, errors.New("boom")
}

func (failingService) Share(context.Context, service.MazeRequest) (string, error) {
	return "", errors.New("boom")
}

func (failingService) Open(context.Context, string) (*service.MazeResult, error) {
	return nil, errors.New("boom")
}

func newTestEngine(t *testing.T, s MazeService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, err := NewMazeController(s)
	require.NoError(t, err)

	engine := gin.New()
	c.Register(engine.Group("/api/v1"))
	return engine
}

func newTestService(t *testing.T, sharing bool) *service.MazeService {
	t.Helper()
	cfg := &service.MazeServiceConfig{MaxDimension: 20}
	if sharing {
		ticketer, err := token.NewJwtTicketer("test-secret", "vinom-maze")
		require.NoError(t, err)
		cfg.Ticketer = ticketer
	}
	svc, err := service.NewMazeService(cfg)
	require.NoError(t, err)
	return svc
}

func do(engine *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGetMaze(t *testing.T) {
	engine := newTestEngine(t, newTestService(t, false))

	t.Run("two cells", func(t *testing.T) {
		w := do(engine, http.MethodGet, "/api/v1/mazes?columns=2&rows=1&algorithm=binary-tree", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "binary-tree", resp.Algorithm)
		assert.Equal(t, "0", resp.Seed)
		assert.Equal(t, []grid.Wall{{From: grid.Pos{X: 1, Y: 0}, To: grid.Pos{X: 1, Y: 1}}}, resp.Walls)
		assert.Equal(t, grid.Pos{X: 1, Y: 0}, resp.Start)
		assert.Equal(t, grid.Pos{X: 0, Y: 0}, resp.End)
		assert.Equal(t, []grid.Pos{{X: 1, Y: 0}, {X: 0, Y: 0}}, resp.Path)
		assert.Equal(t, 1, resp.FarthestDistance)
		assert.Equal(t, [][]int{{1, 0}}, resp.Distances)
		assert.Equal(t, [][]maze.Cell{{
			{NorthWall: true, SouthWall: true, WestWall: true},
			{NorthWall: true, EastWall: true, SouthWall: true},
		}}, resp.Cells)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("default algorithm and determinism", func(t *testing.T) {
		target := "/api/v1/mazes?columns=9&rows=7&seed=18446744073709551615"
		first := do(engine, http.MethodGet, target, nil)
		second := do(engine, http.MethodGet, target, nil)
		require.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))
		assert.Equal(t, DefaultAlgorithm.String(), resp.Algorithm)
		assert.Equal(t, "18446744073709551615", resp.Seed)
		assert.Len(t, resp.Walls, 9*7-1)
		assert.Len(t, resp.Path, resp.FarthestDistance+1)
		assert.Len(t, resp.Distances, 7)
	})

	t.Run("bad requests", func(t *testing.T) {
		for _, target := range []string{
			"/api/v1/mazes?rows=3",
			"/api/v1/mazes?columns=-1&rows=3",
			"/api/v1/mazes?columns=21&rows=3",
			"/api/v1/mazes?columns=3&rows=3&algorithm=prim",
			"/api/v1/mazes?columns=3&rows=3&seed=-4",
		} {
			w := do(engine, http.MethodGet, target, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
		}
	})

	t.Run("ascii", func(t *testing.T) {
		w := do(engine, http.MethodGet, "/api/v1/mazes/ascii?columns=2&rows=1&algorithm=binary-tree", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Equal(t, "+---+---+\n| E   S |\n+---+---+\n", w.Body.String())
	})

	t.Run("internal errors are hidden", func(t *testing.T) {
		failing := newTestEngine(t, failingService{})
		w := do(failing, http.MethodGet, "/api/v1/mazes?columns=2&rows=2", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestShareMaze(t *testing.T) {
	engine := newTestEngine(t, newTestService(t, true))

	body := []byte(`{"columns":8,"rows":5,"seed":42,"algorithm":"sidewinder"}`)
	w := do(engine, http.MethodPost, "/api/v1/mazes/share", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var share ShareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &share))
	require.NotEmpty(t, share.Ticket)

	shared := do(engine, http.MethodGet, "/api/v1/mazes/shared/"+share.Ticket, nil)
	require.Equal(t, http.StatusOK, shared.Code)
	direct := do(engine, http.MethodGet, "/api/v1/mazes?columns=8&rows=5&seed=42&algorithm=sidewinder", nil)
	assert.JSONEq(t, direct.Body.String(), shared.Body.String())

	t.Run("forged ticket", func(t *testing.T) {
		w := do(engine, http.MethodGet, "/api/v1/mazes/shared/not-a-ticket", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := do(engine, http.MethodPost, "/api/v1/mazes/share", []byte(`{"columns":"wide"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(engine, http.MethodPost, "/api/v1/mazes/share", []byte(`{"columns":100,"rows":1}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("sharing disabled", func(t *testing.T) {
		plain := newTestEngine(t, newTestService(t, false))
		w := do(plain, http.MethodPost, "/api/v1/mazes/share", body)
		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})
}

func TestAlgorithms(t *testing.T) {
	engine := newTestEngine(t, newTestService(t, false))

	w := do(engine, http.MethodGet, "/api/v1/algorithms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AlgorithmsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"binary-tree", "sidewinder", "aldous-broder", "wilson"}, resp.Algorithms)
	assert.Equal(t, "wilson", resp.Default)
}

func TestNewMazeController(t *testing.T) {
	_, err := NewMazeController(nil)
	assert.ErrorIs(t, err, ErrNilService)
}
