package handlers

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]any{"message": message})
}

func respondMissingEmails(w http.ResponseWriter, message string, missing []string) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"message":       message,
		"missingEmails": missing,
	})
}
