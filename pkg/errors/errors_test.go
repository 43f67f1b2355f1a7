package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestKindDefaults(t *testing.T) {
	tests := []struct {
		kind     Kind
		code     string
		status   int
		severity Severity
		expose   bool
	}{
		{KindDatabase, "DATABASE_ERROR", http.StatusInternalServerError, SeverityHigh, false},
		{KindValidation, "VALIDATION_ERROR", http.StatusBadRequest, SeverityLow, true},
		{KindAuthentication, "AUTHENTICATION_ERROR", http.StatusUnauthorized, SeverityMedium, true},
		{KindAuthorization, "AUTHORIZATION_ERROR", http.StatusForbidden, SeverityMedium, true},
		{KindNotFound, "NOT_FOUND_ERROR", http.StatusNotFound, SeverityLow, true},
		{KindConflict, "CONFLICT_ERROR", http.StatusConflict, SeverityLow, true},
		{KindRateLimit, "RATE_LIMIT_ERROR", http.StatusTooManyRequests, SeverityLow, true},
		{KindExternalService, "EXTERNAL_SERVICE_ERROR", http.StatusBadGateway, SeverityHigh, false},
		{KindConfiguration, "CONFIGURATION_ERROR", http.StatusInternalServerError, SeverityCritical, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			e := New(tt.kind, "boom")
			assert.Equal(t, tt.code, e.Code())
			assert.Equal(t, tt.status, e.StatusCode())
			assert.Equal(t, tt.severity, e.Severity())
			assert.Equal(t, tt.expose, e.Expose())
			assert.Equal(t, "boom", e.Message())
			assert.False(t, e.Timestamp().IsZero())
		})
	}
}

func TestNew_OptionsOverrideDefaults(t *testing.T) {
	cause := errors.New("driver: connection reset")
	e := NewDatabase("insert failed",
		WithStatusCode(http.StatusServiceUnavailable),
		WithSeverity(SeverityCritical),
		WithExpose(true),
		WithCause(cause),
		WithField("table", "items"),
		WithContext(map[string]any{"id": 7}),
	)

	assert.Equal(t, http.StatusServiceUnavailable, e.StatusCode())
	assert.Equal(t, SeverityCritical, e.Severity())
	assert.True(t, e.Expose())
	assert.Same(t, cause, e.Cause())
	assert.Equal(t, map[string]any{"table": "items", "id": 7}, e.Context())
	assert.True(t, errors.Is(e, cause))
	assert.Equal(t, "DATABASE_ERROR: insert failed", e.Error())
}

func TestError_ContextIsCopied(t *testing.T) {
	e := NewValidation("bad", WithField("field", "name"))

	ctx := e.Context()
	ctx["field"] = "changed"

	assert.Equal(t, "name", e.Context()["field"])
}

func TestNewNotFound(t *testing.T) {
	t.Run("with identifier", func(t *testing.T) {
		e := NewNotFound("User", int64(42))
		assert.Equal(t, "User not found", e.Message())
		assert.Equal(t, "User", e.Context()["resource"])
		assert.Equal(t, int64(42), e.Context()["identifier"])
		assert.Equal(t, http.StatusNotFound, e.StatusCode())
	})

	t.Run("without identifier", func(t *testing.T) {
		e := NewNotFound("items", nil)
		_, ok := e.Context()["identifier"]
		assert.False(t, ok)
		assert.Equal(t, "items", e.Context()["resource"])
	})
}

func TestToResponse(t *testing.T) {
	t.Run("exposed kind includes message and context", func(t *testing.T) {
		e := NewConflict("email already in use", WithField("email", "a@b.c"))
		resp := e.ToResponse(false)
		assert.False(t, resp.Success)
		assert.Equal(t, CodeConflict, resp.Error)
		assert.Equal(t, "email already in use", resp.Message)
		assert.Equal(t, "a@b.c", resp.Context["email"])
	})

	t.Run("hidden kind only carries the code", func(t *testing.T) {
		e := NewDatabase("select failed", WithField("query", "SELECT 1"))
		resp := e.ToResponse(false)
		assert.Equal(t, CodeDatabase, resp.Error)
		assert.Empty(t, resp.Message)
		assert.Nil(t, resp.Context)

		b, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"error":"DATABASE_ERROR"}`, string(b))
	})

	t.Run("forced exposure", func(t *testing.T) {
		e := NewDatabase("select failed")
		assert.Equal(t, "select failed", e.ToResponse(true).Message)
	})
}

func TestLogFields(t *testing.T) {
	cause := NewValidation("inner")
	e := NewDatabase("outer", WithCause(cause), WithField("table", "users"))

	fields := e.LogFields()
	assert.Equal(t, "DatabaseError", fields["name"])
	assert.Equal(t, CodeDatabase, fields["code"])
	assert.Equal(t, "outer", fields["message"])
	assert.Equal(t, http.StatusInternalServerError, fields["statusCode"])
	assert.Equal(t, "high", fields["severity"])
	assert.Equal(t, map[string]any{"table": "users"}, fields["context"])
	assert.NotEmpty(t, fields["stack"])

	_, err := time.Parse(time.RFC3339Nano, fields["timestamp"].(string))
	require.NoError(t, err)

	causeFields := fields["cause"].(map[string]any)
	assert.Equal(t, "ValidationError", causeFields["name"])
	assert.Equal(t, "VALIDATION_ERROR: inner", causeFields["message"])
	assert.NotEmpty(t, causeFields["stack"])
}

func TestMarshalLogObject(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	e := NewExternalService("payments", "upstream timed out", WithCause(errors.New("timeout")))
	logger.Error("request failed", zap.Object("error", e))

	require.Equal(t, 1, logs.Len())
	got := logs.All()[0].ContextMap()["error"].(map[string]any)
	assert.Equal(t, CodeExternalService, got["code"])
	assert.Equal(t, "ExternalServiceError", got["name"])
	assert.Equal(t, "upstream timed out", got["message"])
}

type messenger struct{}

func (messenger) Message() string { return "from method" }

func TestFrom(t *testing.T) {
	t.Run("structured error passes through", func(t *testing.T) {
		e := NewNotFound("Item", 1)
		assert.Same(t, e, From(e))
	})

	t.Run("wrapped structured error is unwrapped", func(t *testing.T) {
		e := NewConflict("dup")
		assert.Same(t, e, From(fmt.Errorf("create: %w", e)))
	})

	t.Run("native error becomes internal", func(t *testing.T) {
		native := errors.New("nil pointer")
		got := From(native)
		assert.Equal(t, CodeInternal, got.Code())
		assert.Same(t, native, got.Cause())
		assert.Equal(t, "nil pointer", got.Message())
		assert.False(t, got.Expose())
	})

	t.Run("string value", func(t *testing.T) {
		got := From("something broke")
		assert.Equal(t, CodeUnknown, got.Code())
		assert.Equal(t, "something broke", got.Message())
		assert.Nil(t, got.Cause())
	})

	t.Run("value with message method", func(t *testing.T) {
		assert.Equal(t, "from method", From(messenger{}).Message())
	})

	t.Run("map with message key", func(t *testing.T) {
		assert.Equal(t, "from map", From(map[string]any{"message": "from map"}).Message())
	})

	t.Run("anything else", func(t *testing.T) {
		got := From(42)
		assert.Equal(t, CodeUnknown, got.Code())
		assert.Equal(t, DefaultUnknownMessage, got.Message())
	})
}

func TestIsAndKindOf(t *testing.T) {
	err := fmt.Errorf("uc.Detail: %w", NewNotFound("Item", 3))

	assert.True(t, Is(err, KindNotFound))
	assert.False(t, Is(err, KindConflict))
	assert.False(t, Is(errors.New("plain"), KindNotFound))

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}
