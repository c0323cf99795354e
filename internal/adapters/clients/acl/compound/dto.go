// Package compound implements the Anti-Corruption Layer translators for the
// downstream chemical registry's compound resources.
package compound

// CompoundDTO matches the downstream Compound schema. The registry keys
// compounds by name; formula and CAS number are optional metadata.
type CompoundDTO struct {
	Name      string  `json:"name"`
	Formula   string  `json:"formula,omitempty"`
	MolarMass float64 `json:"molar_mass_g_mol"`
	CASNumber string  `json:"cas_number,omitempty"`
}

// CompoundListResponseDTO matches the downstream CompoundListResponse schema.
type CompoundListResponseDTO struct {
	Compounds []CompoundDTO `json:"compounds"`
	Count     int64         `json:"count"`
}
