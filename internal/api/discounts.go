package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/merchkit/combobuilder/internal/domain/entity"
	"github.com/merchkit/combobuilder/internal/domain/repository"
	"github.com/merchkit/combobuilder/internal/logging"
	"github.com/merchkit/combobuilder/internal/shopify"
)

func (s *Server) handleDiscountsList(w http.ResponseWriter, r *http.Request) {
	var (
		discounts []*entity.Discount
		err       error
	)
	if r.URL.Query().Get("status") == "active" {
		discounts, err = s.discounts.ListActive(r.Context())
	} else {
		discounts, err = s.discounts.ListAll(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list discounts")
		return
	}

	if discounts == nil {
		discounts = []*entity.Discount{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"discounts": discounts})
}

type createDiscountRequest struct {
	Title           string  `json:"title"`
	Code            string  `json:"code"`
	Type            string  `json:"type"`
	Value           float64 `json:"value"`
	StartsAt        string  `json:"starts_at"`
	EndsAt          string  `json:"ends_at"`
	OncePerCustomer bool    `json:"once_per_customer"`
}

// handleDiscountsCreate creates the discount on the storefront platform
// first, and only mirrors it into the local catalog when that succeeds.
func (s *Server) handleDiscountsCreate(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	var req createDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Title) == "" || req.Value <= 0 {
		writeError(w, http.StatusBadRequest, "Title and value are required")
		return
	}
	if req.Type == "" {
		req.Type = string(entity.DiscountPercentage)
	}

	created, err := s.shopify.CreateCodeDiscount(r.Context(), shopify.CreateDiscountInput{
		Title:           req.Title,
		Code:            req.Code,
		Type:            req.Type,
		Value:           req.Value,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		OncePerCustomer: req.OncePerCustomer,
	})
	if err != nil {
		var svcErr *shopify.ServiceError
		switch {
		case errors.As(err, &svcErr):
			writeError(w, http.StatusBadRequest, svcErr.Message)
		case errors.Is(err, shopify.ErrMissingFields):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Error().Err(err).Msg("discount creation failed")
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	record := entity.NewDiscount(req.Title, entity.DiscountType(req.Type), req.Value)
	record.Code = created.Code
	if err := s.discounts.Add(r.Context(), record); err != nil {
		log.Error().Err(err).Msg("failed to mirror discount into catalog")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Creation finishes the offer flow: the new id becomes the selected
	// discount in a single commit.
	s.store.AttachCreatedDiscount(record.ID)

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Discount code created",
		"discount": record,
	})
}

type updateDiscountRequest struct {
	Title  *string  `json:"title"`
	Value  *float64 `json:"value"`
	Status *string  `json:"status"`
	Usage  *string  `json:"usage"`
}

func (s *Server) handleDiscountsUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	upd := repository.DiscountUpdate{
		Title: req.Title,
		Value: req.Value,
		Usage: req.Usage,
	}
	if req.Status != nil {
		status := entity.DiscountStatus(*req.Status)
		upd.Status = &status
	}

	if err := s.discounts.Update(r.Context(), id, upd); err != nil {
		switch {
		case errors.Is(err, entity.ErrDiscountNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, entity.ErrInvalidDiscountStatus),
			errors.Is(err, entity.ErrInvalidDiscountTitle),
			errors.Is(err, entity.ErrInvalidDiscountValue):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update discount")
		}
		return
	}

	updated, err := s.discounts.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load discount")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDiscountsDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.discounts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrDiscountNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete discount")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
