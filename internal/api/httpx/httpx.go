package httpx

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes the API's standard {"message": ...} body.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"message": msg})
}

// WriteFieldErrors writes an itemized 400 validation response.
func WriteFieldErrors(w http.ResponseWriter, errs any) {
	WriteJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}
