package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the result body of every mutation and of every failed request.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{Success: false, Error: message})
}

func RespondWithSuccess(w http.ResponseWriter, status int) {
	RespondWithJSON(w, status, Response{Success: true})
}
