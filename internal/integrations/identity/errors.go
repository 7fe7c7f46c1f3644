package identity

import "errors"

var (
	// ErrUnauthorized is returned when the provider rejects the bearer token.
	ErrUnauthorized = errors.New("identity client: token rejected")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse is returned when the provider answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("identity client: invalid response")

	// ErrServiceDegraded is returned when a staff lookup fails and the caller
	// should fall back to treating the member as non-staff.
	ErrServiceDegraded = errors.New("identity provider unavailable: graceful degradation applied")
)
