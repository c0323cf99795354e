package dose

// Family identifies one of the four supported conversion unit families.
// It is a closed set: every operation dispatches on it exhaustively, and
// unknown values are rejected at validation time.
type Family string

const (
	// FamilyMassRatio converts between lb/gal and grams.
	FamilyMassRatio Family = "mass_ratio"
	// FamilyVolRatioBarrel converts between gal/bbl and milliliters.
	FamilyVolRatioBarrel Family = "vol_ratio_barrel"
	// FamilyVolRatioThousand converts between gallons per thousand gallons
	// (gal/Mgal) and milliliters.
	FamilyVolRatioThousand Family = "vol_ratio_thousand"
	// FamilyMolarRatio converts between mol/L and grams; it is the only
	// family that needs a molar mass.
	FamilyMolarRatio Family = "molar_ratio"
)

// Families returns all defined families in a stable order.
func Families() []Family {
	return []Family{
		FamilyMassRatio,
		FamilyVolRatioBarrel,
		FamilyVolRatioThousand,
		FamilyMolarRatio,
	}
}

// IsValid returns true if the family is one of the defined constants.
func (f Family) IsValid() bool {
	switch f {
	case FamilyMassRatio, FamilyVolRatioBarrel, FamilyVolRatioThousand, FamilyMolarRatio:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f Family) String() string {
	return string(f)
}

// ConcentrationUnit returns the unit label for concentration inputs and
// reverse-conversion outputs of this family. Unknown families return "".
func (f Family) ConcentrationUnit() string {
	switch f {
	case FamilyMassRatio:
		return "lb/gal"
	case FamilyVolRatioBarrel:
		return "gal/bbl"
	case FamilyVolRatioThousand:
		return "gal/Mgal"
	case FamilyMolarRatio:
		return "mol/L"
	default:
		return ""
	}
}

// AmountUnit returns the unit label for absolute amounts of this family:
// grams for the mass-based families, milliliters for the volume-based ones.
// Unknown families return "".
func (f Family) AmountUnit() string {
	switch f {
	case FamilyMassRatio, FamilyMolarRatio:
		return "g"
	case FamilyVolRatioBarrel, FamilyVolRatioThousand:
		return "mL"
	default:
		return ""
	}
}

// RequiresMolarMass returns true for the molar family, whose conversions
// cannot be computed without a substance-specific molar mass.
func (f Family) RequiresMolarMass() bool {
	return f == FamilyMolarRatio
}
