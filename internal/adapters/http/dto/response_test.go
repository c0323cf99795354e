package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/dosecalc-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/dose"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/reagent"
	"github.com/jsamuelsen11/dosecalc-service/internal/ports"
)

func validResult() ports.ConvertResult {
	return ports.ConvertResult{
		Family:        dose.FamilyVolRatioBarrel,
		VolumeML:      500,
		Concentration: nil,
		Amount:        float64Ptr(500),
	}
}

func TestToConversionResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result ports.ConvertResult
		verify func(t *testing.T, got dto.ConversionResponse)
	}{
		{
			name:   "maps all fields correctly",
			result: validResult(),
			verify: func(t *testing.T, got dto.ConversionResponse) {
				t.Helper()
				if got.Family != "vol_ratio_barrel" {
					t.Errorf("Family = %q, want %q", got.Family, "vol_ratio_barrel")
				}
				if got.VolumeML != 500 {
					t.Errorf("VolumeML = %v, want 500", got.VolumeML)
				}
				if got.Amount == nil || *got.Amount != 500 {
					t.Errorf("Amount = %v, want 500", got.Amount)
				}
				if got.Concentration != nil {
					t.Errorf("Concentration = %v, want nil", *got.Concentration)
				}
			},
		},
		{
			name: "unit labels follow the family",
			result: ports.ConvertResult{
				Family:   dose.FamilyMassRatio,
				VolumeML: 1000,
				Amount:   float64Ptr(453.59237),
			},
			verify: func(t *testing.T, got dto.ConversionResponse) {
				t.Helper()
				if got.ConcentrationUnit != "lb/gal" {
					t.Errorf("ConcentrationUnit = %q, want %q", got.ConcentrationUnit, "lb/gal")
				}
				if got.AmountUnit != "g" {
					t.Errorf("AmountUnit = %q, want %q", got.AmountUnit, "g")
				}
			},
		},
		{
			name: "molar result carries reagent and molar mass",
			result: ports.ConvertResult{
				Family:    dose.FamilyMolarRatio,
				VolumeML:  1000,
				Reagent:   "sodium chloride",
				MolarMass: float64Ptr(58.44),
				Amount:    float64Ptr(58.44),
			},
			verify: func(t *testing.T, got dto.ConversionResponse) {
				t.Helper()
				if got.Reagent != "sodium chloride" {
					t.Errorf("Reagent = %q, want %q", got.Reagent, "sodium chloride")
				}
				if got.MolarMass == nil || *got.MolarMass != 58.44 {
					t.Errorf("MolarMass = %v, want 58.44", got.MolarMass)
				}
				if got.ConcentrationUnit != "mol/L" {
					t.Errorf("ConcentrationUnit = %q, want %q", got.ConcentrationUnit, "mol/L")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToConversionResponse(&tt.result)
			tt.verify(t, got)
		})
	}
}

func TestToBatchConversionResponse(t *testing.T) {
	t.Parallel()

	result := &ports.BatchConvertResult{
		Converted: []ports.BatchItemResult{
			{Index: 0, Label: "friction reducer", Result: validResult()},
			{Index: 2, Label: "salt", Result: validResult()},
		},
		Errors: []ports.BatchItemError{
			{Index: 1, Label: "bad line", Err: errors.New("family invalid")},
		},
	}

	got := dto.ToBatchConversionResponse(result)

	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if got.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", got.Succeeded)
	}
	if got.Failed != 1 {
		t.Errorf("Failed = %d, want 1", got.Failed)
	}

	if len(got.Converted) != 2 {
		t.Fatalf("len(Converted) = %d, want 2", len(got.Converted))
	}
	if got.Converted[0].Index != 0 || got.Converted[0].Label != "friction reducer" {
		t.Errorf("Converted[0] = {%d, %q}, want {0, friction reducer}", got.Converted[0].Index, got.Converted[0].Label)
	}
	if got.Converted[1].Index != 2 || got.Converted[1].Label != "salt" {
		t.Errorf("Converted[1] = {%d, %q}, want {2, salt}", got.Converted[1].Index, got.Converted[1].Label)
	}
	if got.Converted[0].Result.Family != "vol_ratio_barrel" {
		t.Errorf("Converted[0].Result.Family = %q, want %q", got.Converted[0].Result.Family, "vol_ratio_barrel")
	}

	if len(got.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(got.Errors))
	}
	if got.Errors[0].Index != 1 || got.Errors[0].Label != "bad line" {
		t.Errorf("Errors[0] = {%d, %q}, want {1, bad line}", got.Errors[0].Index, got.Errors[0].Label)
	}
	if got.Errors[0].Message != "family invalid" {
		t.Errorf("Errors[0].Message = %q, want %q", got.Errors[0].Message, "family invalid")
	}
}

func TestToBatchConversionResponse_Empty(t *testing.T) {
	t.Parallel()

	got := dto.ToBatchConversionResponse(&ports.BatchConvertResult{})

	if got.Total != 0 || got.Succeeded != 0 || got.Failed != 0 {
		t.Errorf("counts = %d/%d/%d, want 0/0/0", got.Total, got.Succeeded, got.Failed)
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	// Clients iterate these arrays; they must never be null.
	for _, key := range []string{"converted", "errors"} {
		if _, ok := m[key].([]any); !ok {
			t.Errorf("JSON key %q = %v, want array", key, m[key])
		}
	}
}

func TestToFamilyListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToFamilyListResponse(dose.Families())

	if got.Count != 4 {
		t.Errorf("Count = %d, want 4", got.Count)
	}
	if len(got.Families) != 4 {
		t.Fatalf("len(Families) = %d, want 4", len(got.Families))
	}

	byName := make(map[string]dto.FamilyResponse, len(got.Families))
	for _, f := range got.Families {
		byName[f.Name] = f
	}

	molar, ok := byName["molar_ratio"]
	if !ok {
		t.Fatalf("families missing molar_ratio, got %v", byName)
	}
	if !molar.RequiresMolarMass {
		t.Error("molar_ratio.RequiresMolarMass = false, want true")
	}
	if molar.ConcentrationUnit != "mol/L" || molar.AmountUnit != "g" {
		t.Errorf("molar_ratio units = %q/%q, want %q/%q", molar.ConcentrationUnit, molar.AmountUnit, "mol/L", "g")
	}

	for name, f := range byName {
		if name == "molar_ratio" {
			continue
		}
		if f.RequiresMolarMass {
			t.Errorf("%s.RequiresMolarMass = true, want false", name)
		}
	}
}

func TestToReagentResponse(t *testing.T) {
	t.Parallel()

	r := reagent.Reagent{
		Name:      "sodium chloride",
		Formula:   "NaCl",
		CASNumber: "7647-14-5",
		MolarMass: 58.44,
	}

	got := dto.ToReagentResponse(&r)

	if got.Name != "sodium chloride" {
		t.Errorf("Name = %q, want %q", got.Name, "sodium chloride")
	}
	if got.Formula != "NaCl" {
		t.Errorf("Formula = %q, want %q", got.Formula, "NaCl")
	}
	if got.CASNumber != "7647-14-5" {
		t.Errorf("CASNumber = %q, want %q", got.CASNumber, "7647-14-5")
	}
	if got.MolarMass != 58.44 {
		t.Errorf("MolarMass = %v, want 58.44", got.MolarMass)
	}
}

func TestToReagentListResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		reagents  []reagent.Reagent
		wantCount int
		wantLen   int
	}{
		{
			name: "converts multiple reagents",
			reagents: []reagent.Reagent{
				{Name: "sodium chloride", MolarMass: 58.44},
				{Name: "potassium chloride", MolarMass: 74.55},
			},
			wantCount: 2,
			wantLen:   2,
		},
		{
			name:      "empty slice returns empty list",
			reagents:  []reagent.Reagent{},
			wantCount: 0,
			wantLen:   0,
		},
		{
			name:      "nil slice returns empty list",
			reagents:  nil,
			wantCount: 0,
			wantLen:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToReagentListResponse(tt.reagents)
			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if len(got.Reagents) != tt.wantLen {
				t.Errorf("len(Reagents) = %d, want %d", len(got.Reagents), tt.wantLen)
			}
		})
	}
}

func TestConversionResponse_JSONSerialization(t *testing.T) {
	t.Parallel()

	resp := dto.ToConversionResponse(&ports.ConvertResult{
		Family:   dose.FamilyMassRatio,
		VolumeML: 1000,
		Amount:   float64Ptr(453.59237),
	})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	requiredKeys := []string{"family", "volume_ml", "concentration_unit", "amount_unit", "amount"}
	for _, key := range requiredKeys {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON missing key %q, got keys: %v", key, keys(m))
		}
	}

	// Absent optionals must be omitted, not serialized as null.
	omittedKeys := []string{"concentration", "reagent", "molar_mass"}
	for _, key := range omittedKeys {
		if _, ok := m[key]; ok {
			t.Errorf("JSON key %q should be omitted when unset, got keys: %v", key, keys(m))
		}
	}
}

func keys(m map[string]any) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
