package errors

// Option customizes an Error while it is being constructed.
type Option func(*Error)

// WithStatusCode overrides the kind's default HTTP status.
func WithStatusCode(code int) Option {
	return func(e *Error) {
		e.statusCode = code
	}
}

// WithSeverity overrides the kind's default severity.
func WithSeverity(s Severity) Option {
	return func(e *Error) {
		e.severity = s
	}
}

// WithExpose overrides the kind's default exposure policy.
func WithExpose(expose bool) Option {
	return func(e *Error) {
		e.expose = expose
	}
}

// WithCause attaches the lower-level error. A nil err is ignored.
func WithCause(err error) Option {
	return func(e *Error) {
		if err != nil {
			e.cause = err
		}
	}
}

// WithField adds one key/value to the diagnostic context.
func WithField(key string, value any) Option {
	return func(e *Error) {
		if e.context == nil {
			e.context = make(map[string]any, 1)
		}
		e.context[key] = value
	}
}

// WithContext merges kv into the diagnostic context. The map is copied.
func WithContext(kv map[string]any) Option {
	return func(e *Error) {
		if len(kv) == 0 {
			return
		}
		if e.context == nil {
			e.context = make(map[string]any, len(kv))
		}
		for k, v := range kv {
			e.context[k] = v
		}
	}
}
