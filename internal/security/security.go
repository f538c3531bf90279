package security

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
	"github.com/gin-gonic/gin"
)

// GuardConfig bounds what a single request may carry.
type GuardConfig struct {
	MaxBodyBytes   int64
	MaxTextLength  int // runes
	RequestTimeout time.Duration
}

// DefaultGuardConfig returns defaults matching the config package.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		MaxBodyBytes:   1 << 20,
		MaxTextLength:  20000,
		RequestTimeout: 30 * time.Second,
	}
}

// Guard validates request bodies and the text submitted for analysis.
type Guard struct {
	config GuardConfig
}

// NewGuard creates a guard. Zero fields fall back to the defaults.
func NewGuard(config GuardConfig) *Guard {
	def := DefaultGuardConfig()
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = def.MaxBodyBytes
	}
	if config.MaxTextLength <= 0 {
		config.MaxTextLength = def.MaxTextLength
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = def.RequestTimeout
	}
	return &Guard{config: config}
}

// MaxTextLength returns the configured rune limit.
func (g *Guard) MaxTextLength() int {
	return g.config.MaxTextLength
}

// ValidateText rejects text that is too long, not UTF-8, or carries NUL bytes.
// Empty text is valid and scores neutral.
func (g *Guard) ValidateText(text string) error {
	if !utf8.ValidString(text) {
		return errors.NewValidationError("text contains invalid UTF-8 encoding", "field", "text")
	}
	if strings.ContainsRune(text, 0) {
		return errors.NewValidationError("text contains invalid characters", "field", "text")
	}
	if n := utf8.RuneCountInString(text); n > g.config.MaxTextLength {
		return errors.NewValidationError("text exceeds maximum length",
			"field", "text",
			"max_length", strconv.Itoa(g.config.MaxTextLength),
			"length", strconv.Itoa(n))
	}
	return nil
}

// BodyLimit caps the request body. A declared length over the limit is
// rejected here; reads past the limit fail and reach the handler through
// BindError.
func (g *Guard) BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > g.config.MaxBodyBytes {
			abortWith(c, errors.NewValidationError("request body too large",
				"max_bytes", strconv.FormatInt(g.config.MaxBodyBytes, 10)), http.StatusRequestEntityTooLarge)
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, g.config.MaxBodyBytes)
		}
		c.Next()
	}
}

// BindError maps a JSON binding failure to an AppError. A body cut off by
// BodyLimit answers 413, anything else is a validation error.
func (g *Guard) BindError(err error) *errors.AppError {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		appErr := errors.NewValidationError("request body too large",
			"max_bytes", strconv.FormatInt(tooLarge.Limit, 10))
		appErr.HTTPStatus = http.StatusRequestEntityTooLarge
		return appErr
	}
	return errors.NewValidationError("invalid JSON body", err.Error())
}

// ValidateContentType requires JSON on requests that carry a body.
func (g *Guard) ValidateContentType() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		contentType := strings.ToLower(c.GetHeader("Content-Type"))
		if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
			abortWith(c, errors.NewValidationError("unsupported content type",
				"content_type", contentType), http.StatusUnsupportedMediaType)
			return
		}
		c.Next()
	}
}

// RequestTimeout bounds the request context so a slow estimator cannot hold
// the handler past the deadline.
func (g *Guard) RequestTimeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), g.config.RequestTimeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Timeout", strconv.Itoa(int(g.config.RequestTimeout.Seconds())))
		c.Next()
	}
}

func abortWith(c *gin.Context, appErr *errors.AppError, status int) {
	appErr.HTTPStatus = status
	if id, ok := c.Get("request_id"); ok {
		if s, ok := id.(string); ok {
			appErr.RequestID = s
		}
	}
	c.AbortWithStatusJSON(status, gin.H{"error": appErr.Response()})
}
