package mazeapi

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingGenerator always fails with err.
type failingGenerator struct {
	err error
}

func (f failingGenerator) Generate(service.Options, service.FrameSink) (*service.Result, error) {
	return nil, f.err
}

func newHandler(t *testing.T, c *Controller) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []api_i.Controller{c},
	}).Handler()
}

func newController(t *testing.T) *Controller {
	t.Helper()
	g, err := service.NewGenerator(&service.Config{})
	require.NoError(t, err)
	c, err := NewController(g, service.DefaultOptions())
	require.NoError(t, err)
	return c
}

func get(h http.Handler, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	h.ServeHTTP(w, req)
	return w
}

func TestMazeImage(t *testing.T) {
	h := newHandler(t, newController(t))

	t.Run("PNG with requested size", func(t *testing.T) {
		w := get(h, "/api/v1/mazes?width=3&height=3&seed=7")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.NotEmpty(t, w.Header().Get(HeaderMazeID))
		assert.Equal(t, "7", w.Header().Get(HeaderMazeSeed))

		img, err := png.Decode(w.Body)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 7, 7), img.Bounds())
	})

	t.Run("Defaults and scale", func(t *testing.T) {
		w := get(h, "/api/v1/mazes?scale=2&seed=1")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		img, err := png.Decode(w.Body)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 42, 42), img.Bounds())
	})

	t.Run("Same seed same maze", func(t *testing.T) {
		url := "/api/v1/mazes?width=8&height=5&wall_width=2&hall_width=3&build_mode=random-in-queue&shortcut=0.2&seed=11"
		a, b := get(h, url), get(h, url)
		require.Equal(t, http.StatusOK, a.Code)
		require.Equal(t, http.StatusOK, b.Code)
		assert.True(t, bytes.Equal(a.Body.Bytes(), b.Body.Bytes()))
		assert.NotEqual(t, a.Header().Get(HeaderMazeID), b.Header().Get(HeaderMazeID))
	})

	t.Run("BMP", func(t *testing.T) {
		w := get(h, "/api/v1/mazes?format=bmp&seed=2")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/bmp", w.Header().Get("Content-Type"))
	})

	t.Run("Bad requests", func(t *testing.T) {
		for _, query := range []string{
			"width=-1",
			"width=abc",
			"hall_width=100",
			"build_mode=spiral",
			"shortcut=1.5",
			"exit_range=0",
			"format=gif",
			"scale=100",
			"width=500&height=500&wall_width=32&hall_width=32&scale=16",
			"width=500&height=500&scale=16",
		} {
			w := get(h, "/api/v1/mazes?"+query)
			assert.Equal(t, http.StatusBadRequest, w.Code, query)
			assert.Contains(t, w.Body.String(), `"error"`, query)
		}
	})
}

func TestMazeASCII(t *testing.T) {
	h := newHandler(t, newController(t))

	w := get(h, "/api/v1/mazes/ascii?width=4&height=2&seed=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))

	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 2*2+1)
	for _, line := range lines {
		assert.Len(t, line, 4*4+1)
	}

	w = get(h, "/api/v1/mazes/ascii?width=500&height=500&wall_width=32&hall_width=32")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerationFailure(t *testing.T) {
	c, err := NewController(failingGenerator{err: errors.New("boom")}, service.DefaultOptions())
	require.NoError(t, err)
	h := newHandler(t, c)

	w := get(h, "/api/v1/mazes")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")

	w = get(h, "/api/v1/mazes/ascii")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewController(t *testing.T) {
	_, err := NewController(nil, service.DefaultOptions())
	assert.Error(t, err)
}
