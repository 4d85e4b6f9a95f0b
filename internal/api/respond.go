package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DrGenie/LonelyLess-AU/internal/scenario"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationError answers a rejected scenario with 422 and its reason.
// It reports false, writing nothing, when err is not a validation error.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var verr *scenario.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	writeJSON(w, http.StatusUnprocessableEntity, verr)
	return true
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
