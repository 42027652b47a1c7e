package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/contractor-intake/internal/extraction"
	"github.com/jonathan/contractor-intake/internal/fetch"
	"github.com/jonathan/contractor-intake/internal/ingestion"
	"github.com/jonathan/contractor-intake/internal/mapping"
	"github.com/jonathan/contractor-intake/internal/types"
)

// ParseResponse is the response body for POST /parse.
type ParseResponse struct {
	mapping.Result
	Metadata *ingestion.Metadata `json:"metadata"`
}

// handleParse ingests one résumé source, extracts a raw payload and maps
// it to a normalized record.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.extractor == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Extraction service is not configured")
		return
	}

	var (
		text   string
		source string
	)
	switch {
	case req.Text != "":
		text = req.Text
		source = "text"
	case req.HTML != "":
		extracted, err := ingestion.ExtractHTMLText(req.HTML)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to parse HTML: "+err.Error())
			return
		}
		text = extracted
		source = "html"
	case req.URL != "":
		fetched, err := fetch.ProfileText(r.Context(), req.URL, fetch.DefaultOptions())
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch URL: "+err.Error())
			return
		}
		text = fetched
		source = req.URL
	}

	cleaned := ingestion.CleanText(text)
	if cleaned == "" {
		s.errorResponse(w, http.StatusBadRequest, "Source contains no text")
		return
	}

	raw, err := extraction.ExtractWithClient(r.Context(), s.extractor, cleaned)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Extraction failed: "+err.Error())
		return
	}

	result := mapping.Map(raw, cleaned)

	s.jsonResponse(w, http.StatusOK, ParseResponse{
		Result:   result,
		Metadata: ingestion.NewMetadata(cleaned, source),
	})
}

// handleCreateContractor persists a reviewed record and its keywords.
func (s *Server) handleCreateContractor(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Database is not configured")
		return
	}

	var req types.CreateContractorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.db.CreateContractor(r.Context(), req.Record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create contractor: "+err.Error())
		return
	}

	if err := s.db.SaveContractorKeywords(r.Context(), id, req.Keywords); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save keywords: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleGetContractor returns one contractor by ID.
func (s *Server) handleGetContractor(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Database is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid contractor ID")
		return
	}

	contractor, err := s.db.GetContractor(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get contractor: "+err.Error())
		return
	}
	if contractor == nil {
		s.errorResponse(w, http.StatusNotFound, "Contractor not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, contractor)
}

// handleListContractors returns recent contractors.
func (s *Server) handleListContractors(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Database is not configured")
		return
	}

	contractors, err := s.db.ListContractors(r.Context(), 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list contractors: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"contractors": contractors,
		"count":       len(contractors),
	})
}

// handleListContractorKeywords returns the keywords linked to a contractor.
func (s *Server) handleListContractorKeywords(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Database is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid contractor ID")
		return
	}

	keywords, err := s.db.ListContractorKeywords(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list keywords: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"keywords": keywords,
		"count":    len(keywords),
	})
}
