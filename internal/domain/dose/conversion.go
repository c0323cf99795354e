// Package dose implements the additive dosing conversion engine: pure
// functions converting between a per-volume concentration and an absolute
// additive amount for a target fluid volume, across four unit families.
//
// All operations are stateless and side-effect free. The target volume is an
// explicit parameter on every call — nothing is shared between invocations,
// so concurrent use needs no synchronization. Beyond the volume and
// molar-mass guards the engine asserts no physical plausibility: negative
// concentrations and amounts pass through and produce negative results.
package dose

import (
	"fmt"

	"github.com/jsamuelsen11/dosecalc-service/internal/domain"
)

// Conversion binds a unit family to the target volume it operates on, plus
// the molar mass for the molar family. It is a value object: build one per
// calculation, validate it, then run Forward and/or Reverse.
type Conversion struct {
	Family    Family
	VolumeML  float64
	MolarMass float64 // grams per mole; read only by FamilyMolarRatio
}

// Validate checks the family and the input guards. It returns a
// *domain.ValidationError for an unknown family, ErrInvalidVolume when the
// target volume is not positive, and ErrInvalidMolarMass when the molar
// family carries a non-positive molar mass. The volume guard is checked
// before the molar-mass guard.
func (c Conversion) Validate() error {
	if !c.Family.IsValid() {
		return invalidFamilyError(c.Family)
	}
	if c.VolumeML <= 0 {
		return ErrInvalidVolume
	}
	if c.Family.RequiresMolarMass() && c.MolarMass <= 0 {
		return ErrInvalidMolarMass
	}
	return nil
}

// Forward computes the absolute amount (in Family.AmountUnit) that the given
// concentration yields at the target volume.
func (c Conversion) Forward(concentration float64) (float64, error) {
	switch c.Family {
	case FamilyMassRatio:
		return MassRatioForward(concentration, c.VolumeML)
	case FamilyVolRatioBarrel:
		return VolRatioBarrelForward(concentration, c.VolumeML)
	case FamilyVolRatioThousand:
		return VolRatioThousandForward(concentration, c.VolumeML)
	case FamilyMolarRatio:
		return MolarForward(concentration, c.MolarMass, c.VolumeML)
	default:
		return 0, invalidFamilyError(c.Family)
	}
}

// Reverse computes the concentration (in Family.ConcentrationUnit) required
// to reach the given absolute amount at the target volume.
func (c Conversion) Reverse(amount float64) (float64, error) {
	switch c.Family {
	case FamilyMassRatio:
		return MassRatioReverse(amount, c.VolumeML)
	case FamilyVolRatioBarrel:
		return VolRatioBarrelReverse(amount, c.VolumeML)
	case FamilyVolRatioThousand:
		return VolRatioThousandReverse(amount, c.VolumeML)
	case FamilyMolarRatio:
		return MolarReverse(amount, c.MolarMass, c.VolumeML)
	default:
		return 0, invalidFamilyError(c.Family)
	}
}

func invalidFamilyError(f Family) error {
	return &domain.ValidationError{Fields: map[string]string{
		"family": fmt.Sprintf("invalid: %q", f),
	}}
}
