package api_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/productsvc/internal/api"
)

func TestRequireAPIVersion(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})
	h := api.RequireAPIVersion("1.0")(next)

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	req.Header.Set(api.APIVersionHeader, "1.0")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	called = false
	req = httptest.NewRequest(http.MethodGet, "/product", nil)
	req.Header.Set(api.APIVersionHeader, " 1.0")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessTime(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
			},
			status: http.StatusCreated,
		},
		{
			name: "implicit status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			api.ProcessTime(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			header := rec.Header().Get("X-Process-Time")
			require.NotEmpty(t, header)
			elapsed, err := strconv.ParseFloat(header, 64)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, elapsed, 0.0)
		})
	}
}
