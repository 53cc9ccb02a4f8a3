package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"parkospace/config"
	deliverycontext "parkospace/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "keeps client id", header: "abc-123", wantSame: true},
		{name: "generates when missing", header: ""},
		{name: "replaces malformed id", header: "bad id\nwith newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var ctxLogger *slog.Logger
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				ctxLogger = deliverycontext.GetLogger(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			assert.NotNil(t, ctxLogger)
			if tt.wantSame {
				assert.Equal(t, tt.header, headerID)
			} else {
				assert.NotEqual(t, tt.header, headerID)
			}
		})
	}
}

func TestLoggerMiddleware_DebugOnly(t *testing.T) {
	for _, debug := range []bool{true, false} {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/listings?lat=1&lng=2", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set(ownerPhoneKey, "9000000001")

		err := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})(c)
		require.NoError(t, err)

		if debug {
			assert.Contains(t, buf.String(), "HTTP Request")
			assert.Contains(t, buf.String(), "owner_phone=9000000001")
			assert.Contains(t, buf.String(), "query=\"lat=1&lng=2\"")
		} else {
			assert.Empty(t, buf.String())
		}
	}
}
