package endpoints

import (
	"encoding/json"
	"net/http"
)

// respondWithError wraps a message in the API's error envelope.
func respondWithError(w http.ResponseWriter, code int, message interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": message})
}

// respondWithJSON writes payload as the JSON response body with the given
// status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	body, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}
