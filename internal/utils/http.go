package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response.
//
// The "Content-Type" header is set to "application/json" and the provided
// status code is written before the body. If marshaling fails the response
// becomes a 500 Internal Server Error and a wrapped error is returned.
//
// Example usage:
//
//	WriteJSON(w, stories, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Message: "not found"}, http.StatusNotFound)
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

// ReadJSON decodes a JSON request body into dst.
//
// dst must be a non-nil pointer. The body is not closed here; net/http
// does that after the handler returns.
func ReadJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("error reading JSON body: %w", err)
	}

	return nil
}
