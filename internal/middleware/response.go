package middleware

import (
	"encoding/json"
	"net/http"
)

// writeMessage writes a {"message": ...} JSON error body
func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
