package errors

import "fmt"

func NewDatabase(message string, opts ...Option) *Error {
	return New(KindDatabase, message, opts...)
}

func NewValidation(message string, opts ...Option) *Error {
	return New(KindValidation, message, opts...)
}

func NewAuthentication(message string, opts ...Option) *Error {
	return New(KindAuthentication, message, opts...)
}

func NewAuthorization(message string, opts ...Option) *Error {
	return New(KindAuthorization, message, opts...)
}

// NewNotFound builds a NotFound error with the message "<resource> not found".
// The context always carries the resource and, when not nil, the identifier.
func NewNotFound(resource string, identifier any, opts ...Option) *Error {
	base := []Option{WithField("resource", resource)}
	if identifier != nil {
		base = append(base, WithField("identifier", identifier))
	}
	return New(KindNotFound, fmt.Sprintf("%s not found", resource), append(base, opts...)...)
}

func NewConflict(message string, opts ...Option) *Error {
	return New(KindConflict, message, opts...)
}

func NewRateLimit(message string, opts ...Option) *Error {
	return New(KindRateLimit, message, opts...)
}

// NewExternalService builds an error for a failing downstream dependency.
func NewExternalService(service, message string, opts ...Option) *Error {
	return New(KindExternalService, message, append([]Option{WithField("service", service)}, opts...)...)
}

func NewConfiguration(message string, opts ...Option) *Error {
	return New(KindConfiguration, message, opts...)
}
