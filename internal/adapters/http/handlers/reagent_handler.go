package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/dosecalc-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/dosecalc-service/internal/ports"
)

// ReagentHandler handles HTTP requests for the reagent registry passthrough.
type ReagentHandler struct {
	catalog ports.ReagentCatalog
}

// NewReagentHandler creates a new ReagentHandler with the given catalog port.
func NewReagentHandler(catalog ports.ReagentCatalog) *ReagentHandler {
	return &ReagentHandler{catalog: catalog}
}

// ListReagents handles GET /api/v1/reagents.
func (h *ReagentHandler) ListReagents(w http.ResponseWriter, r *http.Request) {
	reagents, err := h.catalog.ListReagents(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReagentListResponse(reagents))
}

// GetReagent handles GET /api/v1/reagents/{name}.
func (h *ReagentHandler) GetReagent(w http.ResponseWriter, r *http.Request) {
	name, err := parseReagentName(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	reag, err := h.catalog.GetReagent(r.Context(), name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReagentResponse(reag))
}
