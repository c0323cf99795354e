package dose

// Conversion constants. The pound and US gallon values are exact by
// definition; they must never be rounded or recomputed at run time.
const (
	// GramsPerPound is the exact mass of one avoirdupois pound in grams.
	GramsPerPound = 453.59237

	// MillilitersPerGallon is the exact volume of one US gallon in milliliters.
	MillilitersPerGallon = 3785.411784

	// GallonsPerBarrel is the number of US gallons in one oil barrel.
	GallonsPerBarrel = 42.0

	// MillilitersPerLiter converts target volumes in mL to liters for the
	// molar family.
	MillilitersPerLiter = 1000.0

	// GallonsPerThousand is the denominator of the gal/Mgal family: the
	// concentration is expressed per thousand gallons of base fluid.
	GallonsPerThousand = 1000.0
)
