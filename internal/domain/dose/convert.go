package dose

import "errors"

// Input guards. Both are deterministic caller errors: no computation is
// attempted once a guard fails, and retrying cannot succeed.
var (
	// ErrInvalidVolume is returned when the target volume is zero or negative.
	// Every formula either multiplies by or divides by the volume, so a
	// non-positive volume would yield zero, ±Inf, or NaN.
	ErrInvalidVolume = errors.New("target volume must be positive")

	// ErrInvalidMolarMass is returned by the molar-family operations when the
	// molar mass is zero or negative.
	ErrInvalidMolarMass = errors.New("molar mass must be positive")
)

// MassRatioForward converts a concentration in lb/gal to the absolute
// additive mass in grams for a target volume of volumeML milliliters.
func MassRatioForward(lbsPerGal, volumeML float64) (float64, error) {
	if volumeML <= 0 {
		return 0, ErrInvalidVolume
	}
	return lbsPerGal * (GramsPerPound / MillilitersPerGallon) * volumeML, nil
}

// MassRatioReverse converts an absolute additive mass in grams back to the
// lb/gal concentration that yields it at the target volume.
func MassRatioReverse(grams, volumeML float64) (float64, error) {
	if volumeML <= 0 {
		return 0, ErrInvalidVolume
	}
	return grams / volumeML * (MillilitersPerGallon / GramsPerPound), nil
}

// VolRatioBarrelForward converts a concentration in gal/bbl to the absolute
// additive volume in milliliters for the target volume. A concentration of
// 42 gal/bbl means the additive equals the full base volume.
func VolRatioBarrelForward(galPerBbl, volumeML float64) (float64, error) {
	if volumeML <= 0 {
		return 0, ErrInvalidVolume
	}
	return galPerBbl / GallonsPerBarrel * volumeML, nil
}

// VolRatioBarrelReverse converts an absolute additive volume in milliliters
// back to the gal/bbl concentration that yields it at the target volume.
func VolRatioBarrelReverse(additiveML, volumeML float64) (float64, error) {
	if volumeML <= 0 {
		return 0, ErrInvalidVolume
	}
	return additiveML / volumeML * GallonsPerBarrel, nil
}

// VolRatioThousandForward converts a concentration in gallons per thousand
// gallons (gal/Mgal) to the absolute additive volume in milliliters for the
// target volume.
func VolRatioThousandForward(galPerMgal, volumeML float64) (float64, error) {
	if volumeML <= 0 {
		return 0, ErrInvalidVolume
	}
	return galPerMgal / GallonsPerThousand * volumeML, nil
}

// VolRatioThousandReverse converts an absolute additive volume in milliliters
// back to the gal/Mgal concentration that yields it at the target volume.
func VolRatioThousandReverse(additiveML, volumeML float64) (float64, error) {
	if volumeML <= 0 {
		return 0, ErrInvalidVolume
	}
	return additiveML * GallonsPerThousand / volumeML, nil
}

// MolarForward converts a molar concentration in mol/L to the absolute
// additive mass in grams for the target volume, using the substance's molar
// mass in g/mol. The volume guard is checked before the molar-mass guard.
func MolarForward(molPerL, molarMass, volumeML float64) (float64, error) {
	if volumeML <= 0 {
		return 0, ErrInvalidVolume
	}
	if molarMass <= 0 {
		return 0, ErrInvalidMolarMass
	}
	return molPerL * molarMass * (volumeML / MillilitersPerLiter), nil
}

// MolarReverse converts an absolute additive mass in grams back to the mol/L
// concentration that yields it at the target volume, using the substance's
// molar mass in g/mol. The volume guard is checked before the molar-mass guard.
func MolarReverse(grams, molarMass, volumeML float64) (float64, error) {
	if volumeML <= 0 {
		return 0, ErrInvalidVolume
	}
	if molarMass <= 0 {
		return 0, ErrInvalidMolarMass
	}
	return grams / (molarMass * (volumeML / MillilitersPerLiter)), nil
}
