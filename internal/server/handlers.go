package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/darkforge/internal/db"
	"github.com/jonathan/darkforge/internal/generator"
	"github.com/jonathan/darkforge/internal/profile"
	"github.com/jonathan/darkforge/internal/report"
	"github.com/jonathan/darkforge/internal/types"
)

// GenerateRequest represents the request body for POST /generate
type GenerateRequest struct {
	Profile   json.RawMessage `json:"profile"`
	Label     string          `json:"label,omitempty"`
	TargetMin int             `json:"target_min,omitempty"`
	TargetMax int             `json:"target_max,omitempty"`
	Year      int             `json:"year,omitempty"`
}

// GenerateResponse wraps the generation result with stored ids when
// persistence is enabled.
type GenerateResponse struct {
	ProfileID *uuid.UUID `json:"profile_id,omitempty"`
	RunID     *uuid.UUID `json:"run_id,omitempty"`
	*types.GenerationResult
}

// AnalyzeRequest represents the request body for POST /analyze
type AnalyzeRequest struct {
	Password *string `json:"password"`
}

// BatchRequest represents the request body for POST /analyze/batch
type BatchRequest struct {
	Passwords []string `json:"passwords"`
}

// BatchResponse carries per-password records in request order and their summary.
type BatchResponse struct {
	BatchID *uuid.UUID             `json:"batch_id,omitempty"`
	Records []types.AnalysisRecord `json:"records"`
	Summary report.Summary         `json:"summary"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ErrValidation{Field: "body", Message: fmt.Sprintf("must not exceed %d bytes", maxBodyBytes)}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

func checkTargets(targetMin, targetMax int) error {
	if targetMin < 0 || targetMin > generator.MaxTarget {
		return &ErrValidation{Field: "target_min", Message: fmt.Sprintf("must be between 0 and %d", generator.MaxTarget)}
	}
	if targetMax < 0 || targetMax > generator.MaxTarget {
		return &ErrValidation{Field: "target_max", Message: fmt.Sprintf("must be between 0 and %d", generator.MaxTarget)}
	}
	return nil
}

// checkPassword rejects passwords the analyzer and the store cannot handle.
func checkPassword(field, pw string) error {
	if strings.IndexByte(pw, 0) >= 0 {
		return &ErrValidation{Field: field, Message: "must not contain NUL bytes"}
	}
	if utf8.RuneCountInString(pw) > MaxPasswordLength {
		return &ErrValidation{Field: field, Message: fmt.Sprintf("must be at most %d characters", MaxPasswordLength)}
	}
	return nil
}

// handleGenerate builds candidates for the posted profile
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if len(req.Profile) == 0 || string(req.Profile) == "null" {
		s.writeError(w, &ErrValidation{Field: "profile", Message: "is required"})
		return
	}
	if err := checkTargets(req.TargetMin, req.TargetMax); err != nil {
		s.writeError(w, err)
		return
	}

	p, err := profile.Parse(req.Profile, profile.FormatJSON)
	if err != nil {
		s.writeError(w, err)
		return
	}

	year := req.Year
	if year == 0 {
		year = s.cfg.CurrentYear
	}
	if year == 0 {
		year = s.now().Year()
	}
	targetMin, targetMax := req.TargetMin, req.TargetMax
	if targetMin == 0 {
		targetMin = s.cfg.TargetMin
	}
	if targetMax == 0 {
		targetMax = s.cfg.TargetMax
	}

	gen := generator.New(generator.WithCurrentYear(year), generator.WithLogger(s.logger))
	result, err := gen.Generate(p, targetMin, targetMax)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := GenerateResponse{GenerationResult: result}
	if s.store != nil {
		resp.ProfileID, resp.RunID = s.recordGeneration(r.Context(), req.Label, p, result)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// recordGeneration stores the profile and run. Failures are logged and do
// not fail the request.
func (s *Server) recordGeneration(ctx context.Context, label string, p *types.Profile, result *types.GenerationResult) (*uuid.UUID, *uuid.UUID) {
	rec, err := s.store.SaveProfile(ctx, label, p)
	if err != nil {
		s.logger.Warn("Failed to store profile", zap.Error(err))
		return nil, nil
	}
	run, err := s.store.CreateGenerationRun(ctx, &db.GenerationRunInput{ProfileID: &rec.ID, Result: result})
	if err != nil {
		s.logger.Warn("Failed to store generation run", zap.Error(err))
		return &rec.ID, nil
	}
	return &rec.ID, &run.ID
}

// handleAnalyze analyzes a single password
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Password == nil {
		s.writeError(w, &ErrValidation{Field: "password", Message: "is required"})
		return
	}
	if err := checkPassword("password", *req.Password); err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Analyze(*req.Password))
}

// handleAnalyzeBatch analyzes a list of passwords, preserving order
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if len(req.Passwords) == 0 {
		s.writeError(w, &ErrValidation{Field: "passwords", Message: "must not be empty"})
		return
	}
	if len(req.Passwords) > s.cfg.MaxBatch {
		s.writeError(w, &ErrValidation{
			Field:   "passwords",
			Message: fmt.Sprintf("at most %d entries per request", s.cfg.MaxBatch),
		})
		return
	}
	for i, pw := range req.Passwords {
		if err := checkPassword(fmt.Sprintf("passwords[%d]", i), pw); err != nil {
			s.writeError(w, err)
			return
		}
	}

	records := s.analyzer.AnalyzeAll(req.Passwords)
	resp := BatchResponse{Records: records, Summary: report.Summarize(records)}

	if s.store != nil {
		batchID, err := s.store.SaveAnalysis(r.Context(), records)
		if err != nil {
			s.logger.Warn("Failed to store analysis batch", zap.Error(err))
		} else {
			resp.BatchID = &batchID
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: field, Message: "must be a uuid"}
	}
	return id, nil
}

func optionalUUID(r *http.Request, field string) (*uuid.UUID, error) {
	value := r.URL.Query().Get(field)
	if value == "" {
		return nil, nil
	}
	id, err := parseUUID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func queryLimit(r *http.Request) (int, error) {
	value := r.URL.Query().Get("limit")
	if value == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return 0, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"}
	}
	return limit, nil
}

// handleGetProfile returns a stored profile
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, ErrStoreUnavailable)
		return
	}
	id, err := parseUUID("id", r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec, err := s.store.GetProfile(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if rec == nil {
		s.writeError(w, &ErrNotFound{Kind: "profile", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleListRuns lists generation runs, optionally for one profile
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, ErrStoreUnavailable)
		return
	}
	profileID, err := optionalUUID(r, "profile_id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	runs, err := s.store.ListGenerationRuns(r.Context(), profileID, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if runs == nil {
		runs = []db.GenerationRun{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleListAnalyses lists stored analyses, optionally for one batch
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, ErrStoreUnavailable)
		return
	}
	batchID, err := optionalUUID(r, "batch_id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rows, err := s.store.ListAnalyses(r.Context(), batchID, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if rows == nil {
		rows = []db.AnalysisRow{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": rows})
}
