package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/dosecalc-service/internal/domain"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/dose"
)

const (
	msgRequired     = "is required"
	msgOneOfPair    = "one of concentration or amount is required"
	msgMustNotEmpty = "must not be empty"
)

// ConvertRequest represents the JSON body for a single dosing conversion.
// Concentration, amount, and molar mass are pointer fields: nil means "not
// provided", and an explicit zero is a legal value.
type ConvertRequest struct {
	Family        string   `json:"family"`
	VolumeML      float64  `json:"volume_ml"`
	Concentration *float64 `json:"concentration,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	MolarMass     *float64 `json:"molar_mass,omitempty"`
	Reagent       string   `json:"reagent,omitempty"`
}

// Validate checks that the family names a known unit family and that at
// least one conversion input is present. Volume and molar-mass guards are
// deliberately not checked here; they belong to the conversion engine.
// Returns a *domain.ValidationError if any checks fail.
func (r *ConvertRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Family) == "" {
		fields["family"] = msgRequired
	} else if !dose.Family(r.Family).IsValid() {
		fields["family"] = fmt.Sprintf("invalid: %q", r.Family)
	}
	if r.Concentration == nil && r.Amount == nil {
		fields["concentration"] = msgOneOfPair
		fields["amount"] = msgOneOfPair
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// BatchItemRequest represents one line of a blend sheet in a batch
// conversion request: the single-conversion fields minus the volume, which
// is shared across the batch, plus a free-form label echoed back in results.
type BatchItemRequest struct {
	Label         string   `json:"label,omitempty"`
	Family        string   `json:"family"`
	Concentration *float64 `json:"concentration,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	MolarMass     *float64 `json:"molar_mass,omitempty"`
	Reagent       string   `json:"reagent,omitempty"`
}

// BatchConvertRequest represents the JSON body for a batch conversion: one
// shared target volume and the blend-sheet items to convert against it.
type BatchConvertRequest struct {
	VolumeML float64            `json:"volume_ml"`
	Items    []BatchItemRequest `json:"items"`
}

// Validate checks that the request carries at least one item. Items are not
// validated individually: batch conversion has partial success semantics, so
// per-item problems surface in the response error list rather than rejecting
// the whole sheet.
// Returns a *domain.ValidationError if any checks fail.
func (r *BatchConvertRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Items) == 0 {
		fields["items"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
