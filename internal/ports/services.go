package ports

import (
	"context"

	"github.com/jsamuelsen11/dosecalc-service/internal/domain/dose"
)

// ConversionService defines the service port for dosing conversions.
// Implemented by the application layer; called by inbound adapters (handlers).
// The service orchestrates the pure conversion engine in domain/dose and
// resolves molar masses through the reagent catalog when needed.
type ConversionService interface {
	// Convert computes a single dosing conversion. Concentration and Amount
	// are explicit optionals: at least one must be provided, and each
	// provided input produces its counterpart in the result (both inputs
	// produce both results).
	// Returns domain.ErrValidation for an unknown family, missing inputs,
	// or a molar request without a molar-mass source; dose.ErrInvalidVolume
	// and dose.ErrInvalidMolarMass for guard failures; domain.ErrNotFound
	// when a named reagent is unknown to the catalog.
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error)

	// ConvertBatch converts every item of a blend sheet against one shared
	// target volume, concurrently. Uses partial success semantics: each item
	// succeeds or fails independently. Returns a hard error only for
	// request-level failures (non-positive volume, empty or oversized item
	// list). Individual item failures are collected in
	// BatchConvertResult.Errors.
	ConvertBatch(ctx context.Context, req BatchConvertRequest) (*BatchConvertResult, error)
}

// ConvertRequest carries the inputs of a single conversion. Pointer fields
// are explicit optionals: nil means "not provided", and zero is a legal
// provided value.
type ConvertRequest struct {
	Family   dose.Family
	VolumeML float64

	// Concentration requests a forward conversion (concentration → amount).
	Concentration *float64
	// Amount requests a reverse conversion (amount → concentration).
	Amount *float64

	// MolarMass supplies the molar mass directly (molar family only).
	// When nil, Reagent names the catalog entry to resolve it from.
	// An explicit MolarMass wins when both are provided.
	MolarMass *float64
	Reagent   string
}

// ConvertResult holds the outputs of a single conversion. Amount is set iff
// a concentration was provided; Concentration is set iff an amount was
// provided. For the molar family, MolarMass carries the value used and
// Reagent the catalog entry it came from (empty when supplied directly).
type ConvertResult struct {
	Family        dose.Family
	VolumeML      float64
	Reagent       string
	MolarMass     *float64
	Amount        *float64
	Concentration *float64
}

// BatchItem is one line of a blend sheet: the single-conversion inputs minus
// the target volume, which is shared across the batch, plus a free-form label
// for correlating results.
type BatchItem struct {
	Label         string
	Family        dose.Family
	Concentration *float64
	Amount        *float64
	MolarMass     *float64
	Reagent       string
}

// BatchConvertRequest carries a blend sheet: one shared target volume and the
// items to convert against it.
type BatchConvertRequest struct {
	VolumeML float64
	Items    []BatchItem
}

// BatchItemResult pairs a successfully converted item with its position and
// label on the blend sheet.
type BatchItemResult struct {
	Index  int
	Label  string
	Result ConvertResult
}

// BatchItemError records a single failed item within a batch conversion.
type BatchItemError struct {
	Index int
	Label string
	Err   error
}

// BatchConvertResult holds the outcomes of a batch conversion.
// Converted contains successful items; Errors contains per-item failures.
// Both preserve blend-sheet order.
type BatchConvertResult struct {
	Converted []BatchItemResult
	Errors    []BatchItemError
}
