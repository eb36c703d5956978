package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/krongr/adboard/internal/api/shared"
	"github.com/krongr/adboard/internal/service"
)

// AdHandler handles ad-related HTTP requests
type AdHandler struct {
	adService service.AdService
	validator *validator.Validate
}

// NewAdHandler creates a new AdHandler
func NewAdHandler(adService service.AdService) *AdHandler {
	return &AdHandler{
		adService: adService,
		validator: shared.NewValidator(),
	}
}

// ListAds handles GET /ads/ requests
func (h *AdHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.adService.ListAds(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := make([]AdResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, AdResponse{
			Title:     summary.Title,
			Text:      summary.Text,
			Owner:     summary.OwnerName,
			CreatedAt: summary.CreatedAt,
			ID:        summary.ID,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateAd handles POST /ads/ requests
func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var req CreateAdRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ValidationProblems(err))
		return
	}

	ad, err := h.adService.CreateAd(r.Context(), req.Title, req.Text, req.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, IDResponse{ID: ad.ID})
}

// UpdateAd handles PATCH /ads/{id} requests
func (h *AdHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	var req UpdateAdRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ValidationProblems(err))
		return
	}

	if err := h.adService.UpdateAd(r.Context(), id, req.Title, req.Text); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.OK)
}

// DeleteAd handles DELETE /ads/{id} requests
// Deleting an ad that doesn't exist still responds {"status":"ok"}.
func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	if err := h.adService.DeleteAd(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.OK)
}
