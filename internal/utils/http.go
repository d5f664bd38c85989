package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// WriteJSON marshals data and writes it with statusCode. A value that
// cannot be marshaled produces a plain-text 500 instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes a {"message": msg} JSON body with the given status.
func WriteMessage(w http.ResponseWriter, msg string, statusCode int) {
	WriteJSON(w, models.MessageResponse{Message: msg}, statusCode)
}
