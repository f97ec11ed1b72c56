package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/merchkit/combobuilder/internal/domain/entity"
	"github.com/merchkit/combobuilder/internal/logging"
)

type templatesListResponse struct {
	Templates   []*entity.Template `json:"templates"`
	ActiveCount int64              `json:"active_count"`
}

func (s *Server) handleTemplatesList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	templates, err := s.templates.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list templates")
		return
	}
	count, err := s.templates.CountActive(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count active templates")
		return
	}

	if templates == nil {
		templates = []*entity.Template{}
	}
	writeJSON(w, http.StatusOK, templatesListResponse{Templates: templates, ActiveCount: count})
}

type createTemplateRequest struct {
	Title  string          `json:"title"`
	Config json.RawMessage `json:"config"`
}

// handleTemplatesCreate snapshots a design as a named template. When no
// config is supplied, the current in-progress design is used.
func (s *Server) handleTemplatesCreate(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	config := req.Config
	if len(config) == 0 {
		data, err := json.Marshal(s.store.Snapshot())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to snapshot design")
			return
		}
		config = data
	}

	tmpl := entity.NewTemplate(req.Title, config)
	if err := s.templates.Create(r.Context(), tmpl); err != nil {
		if errors.Is(err, entity.ErrInvalidTemplateTitle) || errors.Is(err, entity.ErrInvalidTemplateConfig) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save template")
		return
	}

	logging.FromContext(r.Context()).Info().
		Int64("template_id", tmpl.ID).
		Str("title", tmpl.Title).
		Msg("template saved")
	writeJSON(w, http.StatusCreated, tmpl)
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (s *Server) handleTemplatesSetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.templates.SetActive(r.Context(), id, req.Active); err != nil {
		if errors.Is(err, entity.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update template")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "active": req.Active})
}

func (s *Server) handleTemplatesDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.templates.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path segment, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
