package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adproof/adproof/pkg/creative"
	aperrors "github.com/adproof/adproof/pkg/errors"
	"github.com/adproof/adproof/pkg/pipeline"
	"github.com/adproof/adproof/pkg/rules"
	"github.com/adproof/adproof/pkg/store"
)

// =============================================================================
// Requests
// =============================================================================

// validateRequest carries the layout plus run options. The layout arrives as
// raw JSON so structural validation happens in one place.
type validateRequest struct {
	Layout        json.RawMessage `json:"layout"`
	Canvas        string          `json:"canvas,omitempty"`
	Channel       string          `json:"channel,omitempty"`
	Alcohol       bool            `json:"alcohol,omitempty"`
	SingleDensity bool            `json:"single_density,omitempty"`

	// Comprehensive-only fields.
	Retailer    string   `json:"retailer,omitempty"`
	BrandColors []string `json:"brand_colors,omitempty"`
}

type quickCheckRequest struct {
	Headline     string `json:"headline,omitempty"`
	Subhead      string `json:"subhead,omitempty"`
	TescoTagText string `json:"tesco_tag_text,omitempty"`
	Alcohol      bool   `json:"alcohol,omitempty"`
}

type adaptRequest struct {
	Layout        json.RawMessage `json:"layout"`
	SourceFormat  string          `json:"source_format,omitempty"`
	TargetFormat  string          `json:"target_format,omitempty"`
	TargetFormats []string        `json:"target_formats,omitempty"`
	Strategy      string          `json:"strategy,omitempty"`
}

type createLayoutRequest struct {
	Layout   json.RawMessage `json:"layout"`
	Campaign string          `json:"campaign,omitempty"`
}

func decode(req *http.Request, v any) error {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func parseLayout(raw json.RawMessage) (*creative.Layout, error) {
	if len(raw) == 0 {
		return nil, aperrors.New(aperrors.ErrCodeInvalidLayout, "layout is required")
	}
	return creative.Unmarshal(raw)
}

// =============================================================================
// Validation Handlers
// =============================================================================

func (s *Server) handleValidate(w http.ResponseWriter, req *http.Request) {
	var body validateRequest
	if err := decode(req, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	layout, err := parseLayout(body.Layout)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := rules.Validate(layout, rules.Options{
		Canvas:        body.Canvas,
		Channel:       body.Channel,
		Alcohol:       body.Alcohol,
		SingleDensity: body.SingleDensity,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleValidateComprehensive(w http.ResponseWriter, req *http.Request) {
	var body validateRequest
	if err := decode(req, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	layout, err := parseLayout(body.Layout)
	if err != nil {
		writeError(w, err)
		return
	}

	result, _, err := s.runner.ValidateWithCacheInfo(req.Context(), layout, pipeline.Options{
		Source:        body.Canvas,
		Channel:       body.Channel,
		Retailer:      body.Retailer,
		Alcohol:       body.Alcohol,
		SingleDensity: body.SingleDensity,
		BrandColors:   body.BrandColors,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleValidateQuick(w http.ResponseWriter, req *http.Request) {
	var body quickCheckRequest
	if err := decode(req, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	result := rules.QuickCheck(body.Headline, body.Subhead, body.TescoTagText, body.Alcohol)
	writeJSON(w, http.StatusOK, result)
}

// =============================================================================
// Adaptation Handlers
// =============================================================================

func (s *Server) handleAdapt(w http.ResponseWriter, req *http.Request) {
	var body adaptRequest
	if err := decode(req, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	layout, err := parseLayout(body.Layout)
	if err != nil {
		writeError(w, err)
		return
	}
	if body.TargetFormat == "" {
		writeBadRequest(w, "target_format is required")
		return
	}

	adapted, err := s.runner.Adapt(req.Context(), layout, body.TargetFormat, pipeline.Options{
		Source:   body.SourceFormat,
		Strategy: body.Strategy,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"layout":        adapted,
		"source_format": body.SourceFormat,
		"target_format": body.TargetFormat,
	})
}

func (s *Server) handleAdaptBatch(w http.ResponseWriter, req *http.Request) {
	var body adaptRequest
	if err := decode(req, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	layout, err := parseLayout(body.Layout)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(body.TargetFormats) == 0 {
		writeBadRequest(w, "target_formats is required")
		return
	}

	result, err := s.runner.Execute(req.Context(), layout, pipeline.Options{
		Source:   body.SourceFormat,
		Targets:  body.TargetFormats,
		Strategy: body.Strategy,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"layouts":  result.Adapted,
		"warnings": result.Warnings,
	})
}

// =============================================================================
// Catalog Handlers
// =============================================================================

func (s *Server) handleFormats(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"formats": s.runner.Resizer.Formats().All(),
	})
}

func (s *Server) handleRules(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"rules": rules.Catalog(),
	})
}

// =============================================================================
// Layout Store Handlers
// =============================================================================

func (s *Server) handleLayoutCreate(w http.ResponseWriter, req *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "layout storage not configured"})
		return
	}
	var body createLayoutRequest
	if err := decode(req, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	layout, err := parseLayout(body.Layout)
	if err != nil {
		writeError(w, err)
		return
	}

	rec := store.NewRecord(layout, body.Campaign)
	if err := s.store.Put(req.Context(), rec); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleLayoutList(w http.ResponseWriter, req *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "layout storage not configured"})
		return
	}
	records, err := s.store.List(req.Context(), req.URL.Query().Get("campaign"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"layouts": records})
}

func (s *Server) handleLayoutGet(w http.ResponseWriter, req *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "layout storage not configured"})
		return
	}
	rec, err := s.store.Get(req.Context(), chi.URLParam(req, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "layout not found"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleLayoutDelete(w http.ResponseWriter, req *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "layout storage not configured"})
		return
	}
	err := s.store.Delete(req.Context(), chi.URLParam(req, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "layout not found"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
