package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON writes payload as a JSON object with "success": true merged in.
// payload must marshal to a JSON object; nil yields just the success flag.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	body := map[string]interface{}{}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			RespondInternalError(w)
			return
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			RespondInternalError(w)
			return
		}
	}
	body["success"] = true

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// RespondError writes the uniform error body.
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message, Kind: kind})
}

// RespondBadRequest writes a 400 validation error.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, KindValidation, message)
}

// RespondNotFound writes a 404 not_found error.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, KindNotFound, message)
}

// RespondConflict writes a 409 conflict error.
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, KindConflict, message)
}

// RespondUnauthorized writes a 401 authorization error.
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, KindAuthorization, message)
}

// RespondForbidden writes a 403 authorization error.
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, KindAuthorization, message)
}

// RespondBadGateway writes a 502 dependency error.
func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadGateway, KindDependency, message)
}

// RespondInternalError writes a 500 internal error.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, KindInternal, "internal server error")
}
