package errors

import "errors"

// DefaultUnknownMessage is used when nothing readable can be extracted from
// a caught non-error value.
const DefaultUnknownMessage = "An unknown error occurred"

// From normalizes any caught value into a Structured Error.
//
//   - a Structured Error (also when wrapped) is returned as is;
//   - any other error becomes INTERNAL_ERROR with the original as cause;
//   - anything else becomes UNKNOWN_ERROR with a best-effort message.
func From(v any) *Error {
	switch val := v.(type) {
	case nil:
		return New(KindUnknown, DefaultUnknownMessage)
	case *Error:
		return val
	case error:
		var se *Error
		if errors.As(val, &se) {
			return se
		}
		return New(KindInternal, val.Error(), WithCause(val))
	default:
		return New(KindUnknown, messageOf(v))
	}
}

func messageOf(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case interface{ Message() string }:
		return val.Message()
	case map[string]any:
		if msg, ok := val["message"].(string); ok {
			return msg
		}
	}
	return DefaultUnknownMessage
}
