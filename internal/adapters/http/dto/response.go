// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/dose"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/reagent"
	"github.com/jsamuelsen11/dosecalc-service/internal/ports"
)

// ConversionResponse represents a single conversion result in HTTP responses.
// Amount is present iff the request carried a concentration; Concentration
// is present iff the request carried an amount. The unit labels always
// reflect the family so clients never have to hard-code them.
type ConversionResponse struct {
	Family            string   `json:"family"`
	VolumeML          float64  `json:"volume_ml"`
	Concentration     *float64 `json:"concentration,omitempty"`
	ConcentrationUnit string   `json:"concentration_unit"`
	Amount            *float64 `json:"amount,omitempty"`
	AmountUnit        string   `json:"amount_unit"`
	Reagent           string   `json:"reagent,omitempty"`
	MolarMass         *float64 `json:"molar_mass,omitempty"`
}

// ToConversionResponse converts a ports.ConvertResult to an HTTP response DTO.
func ToConversionResponse(result *ports.ConvertResult) ConversionResponse {
	return ConversionResponse{
		Family:            result.Family.String(),
		VolumeML:          result.VolumeML,
		Concentration:     result.Concentration,
		ConcentrationUnit: result.Family.ConcentrationUnit(),
		Amount:            result.Amount,
		AmountUnit:        result.Family.AmountUnit(),
		Reagent:           result.Reagent,
		MolarMass:         result.MolarMass,
	}
}

// BatchConversionResponse represents the result of a batch conversion.
// It includes both successful conversions and per-item errors.
type BatchConversionResponse struct {
	Converted []BatchConvertedItem `json:"converted"`
	Errors    []BatchErrorItem     `json:"errors"`
	Total     int                  `json:"total"`
	Succeeded int                  `json:"succeeded"`
	Failed    int                  `json:"failed"`
}

// BatchConvertedItem represents a single successful conversion within a
// batch, tagged with its blend-sheet position and label.
type BatchConvertedItem struct {
	Index  int                `json:"index"`
	Label  string             `json:"label,omitempty"`
	Result ConversionResponse `json:"result"`
}

// BatchErrorItem represents a single failed conversion within a batch.
type BatchErrorItem struct {
	Index   int    `json:"index"`
	Label   string `json:"label,omitempty"`
	Message string `json:"message"`
}

// ToBatchConversionResponse converts a ports.BatchConvertResult to an HTTP
// response DTO.
func ToBatchConversionResponse(result *ports.BatchConvertResult) BatchConversionResponse {
	converted := make([]BatchConvertedItem, len(result.Converted))
	for i := range result.Converted {
		item := &result.Converted[i]
		converted[i] = BatchConvertedItem{
			Index:  item.Index,
			Label:  item.Label,
			Result: ToConversionResponse(&item.Result),
		}
	}

	errs := make([]BatchErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BatchErrorItem{
			Index:   e.Index,
			Label:   e.Label,
			Message: e.Err.Error(),
		}
	}

	total := len(result.Converted) + len(result.Errors)
	return BatchConversionResponse{
		Converted: converted,
		Errors:    errs,
		Total:     total,
		Succeeded: len(result.Converted),
		Failed:    len(result.Errors),
	}
}

// FamilyResponse describes one conversion unit family in HTTP responses.
type FamilyResponse struct {
	Name              string `json:"name"`
	ConcentrationUnit string `json:"concentration_unit"`
	AmountUnit        string `json:"amount_unit"`
	RequiresMolarMass bool   `json:"requires_molar_mass"`
}

// FamilyListResponse represents the list of supported unit families.
type FamilyListResponse struct {
	Families []FamilyResponse `json:"families"`
	Count    int              `json:"count"`
}

// ToFamilyListResponse converts dose families to an HTTP list response DTO.
func ToFamilyListResponse(families []dose.Family) FamilyListResponse {
	items := make([]FamilyResponse, len(families))
	for i, f := range families {
		items[i] = FamilyResponse{
			Name:              f.String(),
			ConcentrationUnit: f.ConcentrationUnit(),
			AmountUnit:        f.AmountUnit(),
			RequiresMolarMass: f.RequiresMolarMass(),
		}
	}
	return FamilyListResponse{
		Families: items,
		Count:    len(items),
	}
}

// ReagentResponse represents a single reagent in HTTP responses.
type ReagentResponse struct {
	Name      string  `json:"name"`
	Formula   string  `json:"formula,omitempty"`
	CASNumber string  `json:"cas_number,omitempty"`
	MolarMass float64 `json:"molar_mass_g_mol"`
}

// ReagentListResponse represents a list of reagents in HTTP responses.
type ReagentListResponse struct {
	Reagents []ReagentResponse `json:"reagents"`
	Count    int               `json:"count"`
}

// ToReagentResponse converts a domain Reagent entity to an HTTP response DTO.
func ToReagentResponse(r *reagent.Reagent) ReagentResponse {
	return ReagentResponse{
		Name:      r.Name,
		Formula:   r.Formula,
		CASNumber: r.CASNumber,
		MolarMass: r.MolarMass,
	}
}

// ToReagentListResponse converts a slice of domain Reagent entities to an
// HTTP list response DTO.
func ToReagentListResponse(reagents []reagent.Reagent) ReagentListResponse {
	items := make([]ReagentResponse, len(reagents))
	for i := range reagents {
		items[i] = ToReagentResponse(&reagents[i])
	}
	return ReagentListResponse{
		Reagents: items,
		Count:    len(items),
	}
}
