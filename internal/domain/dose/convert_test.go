package dose

import (
	"errors"
	"math"
	"testing"
)

// relTolerance is the maximum relative error accepted when comparing
// floating-point results.
const relTolerance = 1e-9

// requireClose is a test helper that asserts got equals want within
// relTolerance (absolute for a zero want).
func requireClose(t *testing.T, got, want float64) {
	t.Helper()

	if want == 0 {
		if math.Abs(got) > relTolerance {
			t.Fatalf("got %v, want 0 (abs err %g)", got, math.Abs(got))
		}
		return
	}
	if rel := math.Abs(got-want) / math.Abs(want); rel > relTolerance {
		t.Fatalf("got %v, want %v (rel err %g)", got, want, rel)
	}
}

func TestMassRatioForward_OnePoundOverOneGallon(t *testing.T) {
	t.Parallel()

	// 1 lb/gal over exactly one gallon of target volume is exactly one
	// pound, in grams.
	got, err := MassRatioForward(1.0, MillilitersPerGallon)
	if err != nil {
		t.Fatalf("MassRatioForward() error = %v, want nil", err)
	}
	requireClose(t, got, GramsPerPound)
}

func TestVolRatioBarrelForward_FullBarrel(t *testing.T) {
	t.Parallel()

	// 42 gal/bbl means the additive volume equals the base volume,
	// independent of the target volume.
	for _, volumeML := range []float64{1, 158987.294928, 3785.411784, 0.25} {
		got, err := VolRatioBarrelForward(42.0, volumeML)
		if err != nil {
			t.Fatalf("VolRatioBarrelForward(42, %v) error = %v, want nil", volumeML, err)
		}
		requireClose(t, got, volumeML)
	}
}

func TestVolRatioThousandForward_FullThousand(t *testing.T) {
	t.Parallel()

	for _, volumeML := range []float64{1, 500, 3785.411784, 1e6} {
		got, err := VolRatioThousandForward(1000.0, volumeML)
		if err != nil {
			t.Fatalf("VolRatioThousandForward(1000, %v) error = %v, want nil", volumeML, err)
		}
		requireClose(t, got, volumeML)
	}
}

func TestMolarForward_OneMolarOverOneLiter(t *testing.T) {
	t.Parallel()

	// 1 mol/L of NaCl (58.44 g/mol) over one liter is exactly the molar
	// mass, in grams.
	got, err := MolarForward(1.0, 58.44, 1000.0)
	if err != nil {
		t.Fatalf("MolarForward() error = %v, want nil", err)
	}
	requireClose(t, got, 58.44)
}

func TestRoundTrip_AllFamilies(t *testing.T) {
	t.Parallel()

	const molarMass = 58.44

	type pair struct {
		forward func(float64, float64) (float64, error)
		reverse func(float64, float64) (float64, error)
	}

	pairs := map[Family]pair{
		FamilyMassRatio:        {MassRatioForward, MassRatioReverse},
		FamilyVolRatioBarrel:   {VolRatioBarrelForward, VolRatioBarrelReverse},
		FamilyVolRatioThousand: {VolRatioThousandForward, VolRatioThousandReverse},
		FamilyMolarRatio: {
			forward: func(c, v float64) (float64, error) { return MolarForward(c, molarMass, v) },
			reverse: func(g, v float64) (float64, error) { return MolarReverse(g, molarMass, v) },
		},
	}

	volumes := []float64{0.5, 1000, 3785.411784, 158987.294928}
	concentrations := []float64{0, 0.001, 0.5, 1, 2.25, 42, 1000, -3.5}

	for family, p := range pairs {
		for _, v := range volumes {
			for _, c := range concentrations {
				amount, err := p.forward(c, v)
				if err != nil {
					t.Fatalf("%s forward(%v, %v) error = %v, want nil", family, c, v, err)
				}
				back, err := p.reverse(amount, v)
				if err != nil {
					t.Fatalf("%s reverse(%v, %v) error = %v, want nil", family, amount, v, err)
				}
				requireClose(t, back, c)
			}
		}
	}
}

func TestForward_ScalesLinearlyWithVolume(t *testing.T) {
	t.Parallel()

	const (
		concentration = 1.75
		molarMass     = 58.44
		baseVolume    = 2500.0
	)

	type op struct {
		name    string
		forward func(float64, float64) (float64, error)
		reverse func(float64, float64) (float64, error)
	}

	ops := []op{
		{"mass_ratio", MassRatioForward, MassRatioReverse},
		{"vol_ratio_barrel", VolRatioBarrelForward, VolRatioBarrelReverse},
		{"vol_ratio_thousand", VolRatioThousandForward, VolRatioThousandReverse},
		{
			"molar_ratio",
			func(c, v float64) (float64, error) { return MolarForward(c, molarMass, v) },
			func(g, v float64) (float64, error) { return MolarReverse(g, molarMass, v) },
		},
	}

	for _, o := range ops {
		t.Run(o.name, func(t *testing.T) {
			t.Parallel()

			base, err := o.forward(concentration, baseVolume)
			if err != nil {
				t.Fatalf("forward(%v, %v) error = %v, want nil", concentration, baseVolume, err)
			}

			for _, k := range []float64{0.5, 2, 10} {
				scaled, err := o.forward(concentration, k*baseVolume)
				if err != nil {
					t.Fatalf("forward(%v, %v) error = %v, want nil", concentration, k*baseVolume, err)
				}
				requireClose(t, scaled, k*base)

				// The recovered concentration does not depend on the
				// target volume: reverse normalizes by it internally.
				back, err := o.reverse(scaled, k*baseVolume)
				if err != nil {
					t.Fatalf("reverse(%v, %v) error = %v, want nil", scaled, k*baseVolume, err)
				}
				requireClose(t, back, concentration)
			}
		})
	}
}

func TestOperations_InvalidVolume(t *testing.T) {
	t.Parallel()

	ops := []struct {
		name string
		call func(volumeML float64) (float64, error)
	}{
		{"MassRatioForward", func(v float64) (float64, error) { return MassRatioForward(1, v) }},
		{"MassRatioReverse", func(v float64) (float64, error) { return MassRatioReverse(1, v) }},
		{"VolRatioBarrelForward", func(v float64) (float64, error) { return VolRatioBarrelForward(1, v) }},
		{"VolRatioBarrelReverse", func(v float64) (float64, error) { return VolRatioBarrelReverse(1, v) }},
		{"VolRatioThousandForward", func(v float64) (float64, error) { return VolRatioThousandForward(1, v) }},
		{"VolRatioThousandReverse", func(v float64) (float64, error) { return VolRatioThousandReverse(1, v) }},
		{"MolarForward", func(v float64) (float64, error) { return MolarForward(1, 58.44, v) }},
		{"MolarReverse", func(v float64) (float64, error) { return MolarReverse(1, 58.44, v) }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			t.Parallel()

			for _, volumeML := range []float64{0, -1, -3785.411784} {
				got, err := op.call(volumeML)
				if !errors.Is(err, ErrInvalidVolume) {
					t.Errorf("%s with volume %v: error = %v, want ErrInvalidVolume", op.name, volumeML, err)
				}
				if got != 0 {
					t.Errorf("%s with volume %v: result = %v, want 0", op.name, volumeML, got)
				}
			}
		})
	}
}

func TestMolarOperations_InvalidMolarMass(t *testing.T) {
	t.Parallel()

	ops := []struct {
		name string
		call func(molarMass float64) (float64, error)
	}{
		{"MolarForward", func(m float64) (float64, error) { return MolarForward(1, m, 1000) }},
		{"MolarReverse", func(m float64) (float64, error) { return MolarReverse(1, m, 1000) }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			t.Parallel()

			for _, molarMass := range []float64{0, -0.001, -58.44} {
				got, err := op.call(molarMass)
				if !errors.Is(err, ErrInvalidMolarMass) {
					t.Errorf("%s with molar mass %v: error = %v, want ErrInvalidMolarMass", op.name, molarMass, err)
				}
				if got != 0 {
					t.Errorf("%s with molar mass %v: result = %v, want 0", op.name, molarMass, got)
				}
			}
		})
	}
}

func TestMolarOperations_VolumeGuardCheckedFirst(t *testing.T) {
	t.Parallel()

	// When both guards would fire, the volume guard wins.
	if _, err := MolarForward(1, -1, -1); !errors.Is(err, ErrInvalidVolume) {
		t.Errorf("MolarForward(1, -1, -1) error = %v, want ErrInvalidVolume", err)
	}
	if _, err := MolarReverse(1, -1, 0); !errors.Is(err, ErrInvalidVolume) {
		t.Errorf("MolarReverse(1, -1, 0) error = %v, want ErrInvalidVolume", err)
	}
}

func TestOperations_NegativeAndZeroInputsPassThrough(t *testing.T) {
	t.Parallel()

	// Zero and negative concentrations are legal inputs: the engine does
	// not assert physical plausibility.
	got, err := MassRatioForward(0, 1000)
	if err != nil {
		t.Fatalf("MassRatioForward(0, 1000) error = %v, want nil", err)
	}
	requireClose(t, got, 0)

	got, err = VolRatioBarrelForward(-42, 1000)
	if err != nil {
		t.Fatalf("VolRatioBarrelForward(-42, 1000) error = %v, want nil", err)
	}
	requireClose(t, got, -1000)

	got, err = MolarReverse(-58.44, 58.44, 1000)
	if err != nil {
		t.Fatalf("MolarReverse(-58.44, 58.44, 1000) error = %v, want nil", err)
	}
	requireClose(t, got, -1)
}
