package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/dosecalc-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/dose"
	"github.com/jsamuelsen11/dosecalc-service/internal/ports"
)

// parseReagentName extracts the reagent name path parameter from the chi URL
// params. Registry names may contain characters that arrive URL-escaped
// ("sodium%20chloride"), so the raw segment is unescaped first.
func parseReagentName(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{"name": "must be a non-empty reagent name"},
		}
	}
	return name, nil
}

// mapConvertRequest converts a ConvertRequest DTO to the service port request.
func mapConvertRequest(req *dto.ConvertRequest) ports.ConvertRequest {
	return ports.ConvertRequest{
		Family:        dose.Family(req.Family),
		VolumeML:      req.VolumeML,
		Concentration: req.Concentration,
		Amount:        req.Amount,
		MolarMass:     req.MolarMass,
		Reagent:       req.Reagent,
	}
}

// mapBatchConvertRequest converts a BatchConvertRequest DTO to the service
// port request.
func mapBatchConvertRequest(req *dto.BatchConvertRequest) ports.BatchConvertRequest {
	items := make([]ports.BatchItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = ports.BatchItem{
			Label:         item.Label,
			Family:        dose.Family(item.Family),
			Concentration: item.Concentration,
			Amount:        item.Amount,
			MolarMass:     item.MolarMass,
			Reagent:       item.Reagent,
		}
	}
	return ports.BatchConvertRequest{
		VolumeML: req.VolumeML,
		Items:    items,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
