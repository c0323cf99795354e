// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/dosecalc-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/dose"
	"github.com/jsamuelsen11/dosecalc-service/internal/ports"
)

// ConversionHandler handles HTTP requests for single and batch dosing
// conversions and the unit-family listing.
type ConversionHandler struct {
	svc ports.ConversionService
}

// NewConversionHandler creates a new ConversionHandler with the given
// service port.
func NewConversionHandler(svc ports.ConversionService) *ConversionHandler {
	return &ConversionHandler{svc: svc}
}

// Convert handles POST /api/v1/conversions.
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req dto.ConvertRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.Convert(r.Context(), mapConvertRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToConversionResponse(result))
}

// ConvertBatch handles POST /api/v1/conversions/batch.
func (h *ConversionHandler) ConvertBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchConvertRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.ConvertBatch(r.Context(), mapBatchConvertRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBatchConversionResponse(result))
}

// ListFamilies handles GET /api/v1/families.
func (h *ConversionHandler) ListFamilies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToFamilyListResponse(dose.Families()))
}
