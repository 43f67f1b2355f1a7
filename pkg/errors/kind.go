package errors

import "net/http"

// Kind is the closed set of failure categories an Error can belong to.
type Kind uint8

const (
	KindDatabase Kind = iota + 1
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindRateLimit
	KindExternalService
	KindConfiguration

	// KindInternal and KindUnknown wrap failures that were not raised as a
	// Structured Error, such as a native error passed to From or a recovered panic.
	KindInternal
	KindUnknown
)

// Severity ranks how urgently an error needs operator attention.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Stable machine-readable codes, one per Kind.
const (
	CodeDatabase        = "DATABASE_ERROR"
	CodeValidation      = "VALIDATION_ERROR"
	CodeAuthentication  = "AUTHENTICATION_ERROR"
	CodeAuthorization   = "AUTHORIZATION_ERROR"
	CodeNotFound        = "NOT_FOUND_ERROR"
	CodeConflict        = "CONFLICT_ERROR"
	CodeRateLimit       = "RATE_LIMIT_ERROR"
	CodeExternalService = "EXTERNAL_SERVICE_ERROR"
	CodeConfiguration   = "CONFIGURATION_ERROR"
	CodeInternal        = "INTERNAL_ERROR"
	CodeUnknown         = "UNKNOWN_ERROR"
)

type defaults struct {
	name       string
	code       string
	statusCode int
	severity   Severity
	expose     bool
}

var kindDefaults = map[Kind]defaults{
	KindDatabase:        {"DatabaseError", CodeDatabase, http.StatusInternalServerError, SeverityHigh, false},
	KindValidation:      {"ValidationError", CodeValidation, http.StatusBadRequest, SeverityLow, true},
	KindAuthentication:  {"AuthenticationError", CodeAuthentication, http.StatusUnauthorized, SeverityMedium, true},
	KindAuthorization:   {"AuthorizationError", CodeAuthorization, http.StatusForbidden, SeverityMedium, true},
	KindNotFound:        {"NotFoundError", CodeNotFound, http.StatusNotFound, SeverityLow, true},
	KindConflict:        {"ConflictError", CodeConflict, http.StatusConflict, SeverityLow, true},
	KindRateLimit:       {"RateLimitError", CodeRateLimit, http.StatusTooManyRequests, SeverityLow, true},
	KindExternalService: {"ExternalServiceError", CodeExternalService, http.StatusBadGateway, SeverityHigh, false},
	KindConfiguration:   {"ConfigurationError", CodeConfiguration, http.StatusInternalServerError, SeverityCritical, false},
	KindInternal:        {"InternalError", CodeInternal, http.StatusInternalServerError, SeverityHigh, false},
	KindUnknown:         {"UnknownError", CodeUnknown, http.StatusInternalServerError, SeverityMedium, false},
}

func (k Kind) defaults() defaults {
	if d, ok := kindDefaults[k]; ok {
		return d
	}
	return kindDefaults[KindUnknown]
}

// String returns the error type name of the kind, e.g. "NotFoundError".
func (k Kind) String() string {
	return k.defaults().name
}

// Code returns the stable code for the kind.
func (k Kind) Code() string {
	return k.defaults().code
}

// StatusCode returns the default HTTP status for the kind.
func (k Kind) StatusCode() int {
	return k.defaults().statusCode
}

// Severity returns the default severity for the kind.
func (k Kind) Severity() Severity {
	return k.defaults().severity
}

// Exposed reports whether errors of this kind are client-visible by default.
func (k Kind) Exposed() bool {
	return k.defaults().expose
}
