package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sebastian-gasior/jobfit/internal/schemas"
	"github.com/sebastian-gasior/jobfit/internal/types"
)

// maxRequestBody caps request bodies well above the pipeline's own text caps.
const maxRequestBody = 1 << 20 // 1 MiB

// analyzeRequest is the body of POST /analyze.
type analyzeRequest struct {
	Profile *types.CandidateProfile `json:"profile" validate:"required"`
	JobText string                  `json:"job_text" validate:"required"`
}

// handleAnalyze runs an ad-hoc analysis on an inline profile.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := s.decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	result, err := s.engine.RunAnalysis(r.Context(), req.Profile, req.JobText)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// analyzeStoredRequest is the body of POST /profiles/{id}/analyze.
type analyzeStoredRequest struct {
	JobText string `json:"job_text" validate:"required"`
}

// handleAnalyzeStored runs an analysis against a stored profile.
func (s *Server) handleAnalyzeStored(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "profile storage is not configured"})
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid profile id"})
		return
	}

	var req analyzeStoredRequest
	if err := s.decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	profile, err := s.db.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.engine.RunAnalysis(r.Context(), profile, req.JobText)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleCreateProfile validates a profile document against the schema and
// stores it.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "profile storage is not configured"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read request body"})
		return
	}

	if err := schemas.ValidateCandidateProfile(body); err != nil {
		writeError(w, err)
		return
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid profile JSON"})
		return
	}

	id, err := s.db.SaveProfile(r.Context(), &profile)
	if err != nil {
		s.log.Error("failed to save profile", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleGetProfile returns a stored profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "profile storage is not configured"})
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid profile id"})
		return
	}

	profile, err := s.db.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleUpdateProfile replaces a stored profile after schema validation.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "profile storage is not configured"})
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid profile id"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read request body"})
		return
	}
	if err := schemas.ValidateCandidateProfile(body); err != nil {
		writeError(w, err)
		return
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid profile JSON"})
		return
	}

	if err := s.db.UpdateProfile(r.Context(), id, &profile); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id.String()})
}

// handleDeleteProfile removes a stored profile.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "profile storage is not configured"})
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid profile id"})
		return
	}

	if err := s.db.DeleteProfile(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads and unmarshals a JSON request body.
func (s *Server) decode(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return errors.New("failed to read request body")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return errors.New("invalid JSON request body")
	}
	return nil
}
