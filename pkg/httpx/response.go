// Package httpx holds small HTTP helpers shared by every handler: JSON
// response writing, middleware chaining and rate limiting.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Message is the generic response body used for status and error replies.
type Message struct {
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a {"message": ...} body with the given status code.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, Message{Message: msg})
}

// NoCache marks the response as non-cacheable. Required for anything
// carrying session or account state.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
