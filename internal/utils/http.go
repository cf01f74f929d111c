package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// WriteJSON encodes data and writes it with statusCode. The body is encoded
// before any header is written, so an encoding failure still produces a
// clean 500 instead of a truncated document.
//
//	utils.WriteJSON(w, view, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding %T to JSON: %w", data, err)
	}

	return write(w, contentTypeJSON, body, statusCode)
}

// WriteText writes s as a UTF-8 plain text body.
func WriteText(w http.ResponseWriter, s string, statusCode int) (int, error) {
	return write(w, contentTypeText, []byte(s), statusCode)
}

func write(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
