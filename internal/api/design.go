package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/merchkit/combobuilder/internal/combo"
)

func (s *Server) handleDesignGet(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

type setFieldRequest struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func (s *Server) handleDesignSetField(w http.ResponseWriter, r *http.Request) {
	var req setFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	var value any
	if err := json.Unmarshal(req.Value, &value); err != nil {
		writeError(w, http.StatusBadRequest, "invalid value")
		return
	}

	if err := s.store.Set(req.Key, value); err != nil {
		if errors.Is(err, combo.ErrUnknownKey) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update design")
		return
	}

	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

type setPairRequest struct {
	KeyA  string          `json:"key_a"`
	KeyB  string          `json:"key_b"`
	Value json.RawMessage `json:"value"`
}

func (s *Server) handleDesignSetPair(w http.ResponseWriter, r *http.Request) {
	var req setPairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.KeyA == "" || req.KeyB == "" {
		writeError(w, http.StatusBadRequest, "key_a and key_b are required")
		return
	}

	var value any
	if err := json.Unmarshal(req.Value, &value); err != nil {
		writeError(w, http.StatusBadRequest, "invalid value")
		return
	}

	if err := s.store.SetPair(req.KeyA, req.KeyB, value); err != nil {
		if errors.Is(err, combo.ErrUnknownKey) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update design")
		return
	}

	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleDesignReset(w http.ResponseWriter, _ *http.Request) {
	s.store.Reset()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

type offerRequest struct {
	Enabled    bool   `json:"enabled"`
	DiscountID *int64 `json:"discount_id"`
}

func (s *Server) handleDesignOffer(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !req.Enabled {
		s.store.DisableOffer()
		writeJSON(w, http.StatusOK, s.store.Snapshot())
		return
	}

	active, err := s.discounts.ListActive(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load discounts")
		return
	}
	activeIDs := make([]int64, 0, len(active))
	for _, d := range active {
		activeIDs = append(activeIDs, d.ID)
	}

	s.store.EnableOffer(activeIDs)

	if req.DiscountID != nil {
		if err := s.store.SelectDiscount(*req.DiscountID); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, s.store.Snapshot())
}
