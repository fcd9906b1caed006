package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/goalplan/engine/internal/api/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDocument sends an already-encoded JSON document unchanged.
func writeDocument(w http.ResponseWriter, status int, doc json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(doc)
}

func writeError(w http.ResponseWriter, err error) {
	status, body := types.FromAppError(err)
	writeJSON(w, status, body)
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg})
}
