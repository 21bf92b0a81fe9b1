package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		production  bool
		expectedMsg string
	}{
		{name: "development exposes panic", production: false, expectedMsg: "Internal server error: rule store exploded"},
		{name: "production hides panic", production: true, expectedMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("rule store exploded")
			})

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				RecoverMiddleware(tt.production)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMsg, body["error"])
		})
	}
}

func TestRecoverMiddleware_PassThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	RecoverMiddleware(true)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusAccepted, rr.Code)
}
