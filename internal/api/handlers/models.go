package handlers

// Error kinds exposed to clients. Each maps to one HTTP status family.
const (
	KindValidation    = "validation"
	KindNotFound      = "not_found"
	KindConflict      = "conflict"
	KindAuthorization = "authorization"
	KindDependency    = "dependency"
	KindInternal      = "internal"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
