// Package reagent defines the chemical additive entity backing the molar
// conversion family. Reagents are served by the downstream chemical registry
// and are never persisted locally.
package reagent

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/dosecalc-service/internal/domain"
)

// Reagent is a chemical additive with the molar mass needed to convert
// between molar concentration and mass.
type Reagent struct {
	Name      string
	Formula   string
	CASNumber string
	MolarMass float64 // grams per mole
}

// Validate checks business rules for the Reagent entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass. Formula and CAS number are
// optional: not every registry entry carries them.
func (r *Reagent) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if r.MolarMass <= 0 {
		fields["molar_mass"] = fmt.Sprintf("must be positive, got %v", r.MolarMass)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
