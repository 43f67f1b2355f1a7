package errors

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// Response is the client-safe body for a failed request.
type Response struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Message string         `json:"message,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// ToResponse builds the client body. Message and context are included only
// when the error is exposed or forceExpose is set.
func (e *Error) ToResponse(forceExpose bool) Response {
	resp := Response{Success: false, Error: e.code}
	if e.expose || forceExpose {
		resp.Message = e.message
		resp.Context = e.Context()
	}
	return resp
}

// LogFields returns the full log serialization of the error.
func (e *Error) LogFields() map[string]any {
	fields := map[string]any{
		"name":       e.Name(),
		"code":       e.code,
		"message":    e.message,
		"statusCode": e.statusCode,
		"severity":   string(e.severity),
		"timestamp":  e.timestamp.Format(time.RFC3339Nano),
		"stack":      e.Stack(),
	}
	if ctx := e.Context(); ctx != nil {
		fields["context"] = ctx
	}
	if e.cause != nil {
		fields["cause"] = causeFields(e.cause)
	}
	return fields
}

// MarshalLogObject lets the error be logged with zap.Object.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", e.Name())
	enc.AddString("code", e.code)
	enc.AddString("message", e.message)
	enc.AddInt("statusCode", e.statusCode)
	enc.AddString("severity", string(e.severity))
	enc.AddTime("timestamp", e.timestamp)
	if ctx := e.Context(); ctx != nil {
		if err := enc.AddReflected("context", ctx); err != nil {
			return err
		}
	}
	if e.cause != nil {
		if err := enc.AddReflected("cause", causeFields(e.cause)); err != nil {
			return err
		}
	}
	enc.AddString("stack", e.Stack())
	return nil
}

func causeFields(cause error) map[string]any {
	fields := map[string]any{
		"name":    fmt.Sprintf("%T", cause),
		"message": cause.Error(),
	}
	if se, ok := cause.(*Error); ok {
		fields["name"] = se.Name()
		fields["stack"] = se.Stack()
	}
	return fields
}
