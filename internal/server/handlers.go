package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/openlinkage/openlinkage/api/models"
	"github.com/openlinkage/openlinkage/internal/analyzer"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var raw models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	slog.Debug("Received analysis request", "request", raw)

	req, err := analyzer.Normalize(raw)
	if err != nil {
		var verr *analyzer.ValidationError
		if errors.As(err, &verr) {
			slog.Warn("Rejected analysis request", "field", verr.Field, "reason", verr.Reason)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	payload := s.analyzer.Analyze(req)

	slog.Debug("Analysis request completed successfully", "user_id", payload.UserID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
