package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		category ErrorCategory
		status   int
		code     string
	}{
		{"validation", NewValidationError("bad method", "method", "unknown"), CategoryValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"input", NewInputError("unsupported file", nil), CategoryInput, http.StatusUnprocessableEntity, "INPUT_ERROR"},
		{"network", NewNetworkError("down", nil), CategoryNetwork, http.StatusBadGateway, "NETWORK_ERROR"},
		{"timeout", NewTimeoutError("slow", nil), CategoryTimeout, http.StatusGatewayTimeout, "TIMEOUT_ERROR"},
		{"rate limit", NewRateLimitError("60"), CategoryRateLimit, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
		{"external", NewExternalAPIError("openai", fmt.Errorf("boom")), CategoryExternalAPI, http.StatusBadGateway, "EXTERNAL_API_ERROR"},
		{"internal", NewInternalError("oops", nil), CategoryInternal, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"configuration", NewConfigurationError("missing key", nil), CategoryConfiguration, http.StatusInternalServerError, "CONFIGURATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Contains(t, tt.err.Error(), "["+tt.code+"]")
			assert.Equal(t, tt.code, tt.err.Response().Code)
		})
	}
}

func TestValidationDetails(t *testing.T) {
	err := NewValidationError("bad request", "method", "unknown method", "trailing")
	assert.Equal(t, "unknown method", err.Details["method"])
	assert.Equal(t, "trailing", err.Details["validation_details"])

	assert.Nil(t, NewValidationError("no details").Details)
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewNetworkError("provider unreachable", cause)
	assert.True(t, stderrors.Is(err, cause))
}

func TestToAppError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ToAppError(nil))
	})

	t.Run("app error passes through", func(t *testing.T) {
		original := NewValidationError("bad")
		wrapped := fmt.Errorf("handler: %w", original)
		assert.Same(t, original, ToAppError(wrapped))
	})

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
	}{
		{"deadline", context.DeadlineExceeded, CategoryTimeout},
		{"cancelled", context.Canceled, CategoryTimeout},
		{"connection refused", fmt.Errorf("dial tcp 127.0.0.1:6379: connection refused"), CategoryNetwork},
		{"timeout text", fmt.Errorf("i/o timeout"), CategoryTimeout},
		{"anything else", fmt.Errorf("something broke"), CategoryInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, ToAppError(tt.err).Category)
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, IsRetryableError(nil))
	assert.False(t, IsRetryableError(NewValidationError("bad")))
	assert.False(t, IsRetryableError(fmt.Errorf("plain failure")))
	assert.True(t, IsRetryableError(NewTimeoutError("slow", nil)))
	assert.True(t, IsRetryableError(NewExternalAPIError("google", nil)))
	assert.True(t, IsRetryableError(context.DeadlineExceeded))
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	cause := fmt.Errorf("root")
	err := WrapError(cause, "loading %s", "tables")
	assert.EqualError(t, err, "loading tables: root")
	assert.True(t, stderrors.Is(err, cause))
}

func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(RecoveryHandler(), ErrorHandler())
	r.GET("/validation", func(c *gin.Context) {
		c.Set("request_id", "req-1")
		_ = c.Error(NewValidationError("text too long", "text", "exceeds limit"))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("unexpected"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newTestRouter()

	t.Run("app error is rendered", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/validation", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body struct {
			Error ErrorResponse `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Equal(t, "text too long", body.Error.Message)
		assert.Equal(t, "req-1", body.Error.RequestID)
		assert.Equal(t, "exceeds limit", body.Error.Details["text"])
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	})

	t.Run("success untouched", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
