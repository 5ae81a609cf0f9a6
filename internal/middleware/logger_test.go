package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/payrelay/flowgate/internal/middleware"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, nil))

	handler := middleware.NewStructuredLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusTeapot, w.Code)

	out := buf.String()
	require.Contains(t, out, "request completed")
	require.Contains(t, out, "method=GET")
	require.Contains(t, out, "path=/payments")
	require.Contains(t, out, "status=418")
	require.Contains(t, out, "request_id=")
}
