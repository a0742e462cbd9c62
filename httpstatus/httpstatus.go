// Package httpstatus classifies HTTP status codes into IANA registry
// families and exposes per-code convenience predicates.
package httpstatus

import "net/http"

// Family is an HTTP status code class per the IANA registry
type Family int

const (
	Unknown Family = iota
	Informational
	Successful
	Redirection
	ClientError
	ServerError
)

// String returns the family name
func (f Family) String() string {
	switch f {
	case Informational:
		return "Informational"
	case Successful:
		return "Successful"
	case Redirection:
		return "Redirection"
	case ClientError:
		return "Client Error"
	case ServerError:
		return "Server Error"
	default:
		return "Unknown"
	}
}

// FamilyOf returns the family of the given status code
func FamilyOf(code int) Family {
	switch {
	case code >= 100 && code < 200:
		return Informational
	case code >= 200 && code < 300:
		return Successful
	case code >= 300 && code < 400:
		return Redirection
	case code >= 400 && code < 500:
		return ClientError
	case code >= 500 && code < 600:
		return ServerError
	default:
		return Unknown
	}
}

// ReasonPhrase returns the IANA reason phrase for the code, or "" when the
// code is not registered
func ReasonPhrase(code int) string {
	return http.StatusText(code)
}

// IsInformational reports whether the code is in the 1xx family
func IsInformational(code int) bool { return FamilyOf(code) == Informational }

// IsSuccessful reports whether the code is in the 2xx family
func IsSuccessful(code int) bool { return FamilyOf(code) == Successful }

// IsRedirection reports whether the code is in the 3xx family
func IsRedirection(code int) bool { return FamilyOf(code) == Redirection }

// IsClientError reports whether the code is in the 4xx family
func IsClientError(code int) bool { return FamilyOf(code) == ClientError }

// IsServerError reports whether the code is in the 5xx family
func IsServerError(code int) bool { return FamilyOf(code) == ServerError }

// IsError reports whether the code is a client or server error
func IsError(code int) bool { return IsClientError(code) || IsServerError(code) }

// IsRetryable reports whether a request failing with this code is worth
// retrying: request timeout, rate limiting, and transient upstream errors
func IsRetryable(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Convenience predicates for common codes
func IsOK(code int) bool                  { return code == http.StatusOK }
func IsCreated(code int) bool             { return code == http.StatusCreated }
func IsNoContent(code int) bool           { return code == http.StatusNoContent }
func IsMovedPermanently(code int) bool    { return code == http.StatusMovedPermanently }
func IsNotModified(code int) bool         { return code == http.StatusNotModified }
func IsBadRequest(code int) bool          { return code == http.StatusBadRequest }
func IsUnauthorized(code int) bool        { return code == http.StatusUnauthorized }
func IsForbidden(code int) bool           { return code == http.StatusForbidden }
func IsNotFound(code int) bool            { return code == http.StatusNotFound }
func IsTooManyRequests(code int) bool     { return code == http.StatusTooManyRequests }
func IsInternalServerError(code int) bool { return code == http.StatusInternalServerError }
func IsServiceUnavailable(code int) bool  { return code == http.StatusServiceUnavailable }
