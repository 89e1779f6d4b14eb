package httpapi

import (
	"encoding/json"
	"net/http"
)

// generic fallback, kept verbatim from the deployed API
const msgGenericError = "An error has occured, please try again"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
