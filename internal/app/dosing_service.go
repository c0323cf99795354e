// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/dosecalc-service/internal/app/fanout"
	"github.com/jsamuelsen11/dosecalc-service/internal/app/reqcache"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/dose"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/reagent"
	"github.com/jsamuelsen11/dosecalc-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/dosecalc-service/internal/ports"
)

// Compile-time check that DosingService implements ports.ConversionService.
var _ ports.ConversionService = (*DosingService)(nil)

// Fallbacks for batch limits when the configured values are missing or
// invalid.
const (
	defaultBatchMaxWorkers = 4
	defaultBatchMaxItems   = 100
)

// DosingService implements ports.ConversionService. It orchestrates the pure
// conversion engine in domain/dose, resolving molar masses through the
// reagent catalog when a molar conversion names a reagent instead of
// supplying the mass directly. Batch conversions run concurrently with
// per-request memoization of catalog lookups.
type DosingService struct {
	catalog         ports.ReagentCatalog
	metrics         *telemetry.Metrics
	logger          *slog.Logger
	batchMaxWorkers int
	batchMaxItems   int
}

// NewDosingService creates a DosingService. The catalog port resolves
// reagent names to molar masses. metrics may be nil when telemetry is
// disabled; a nil logger falls back to a no-op logger. batchMaxWorkers
// bounds batch concurrency and batchMaxItems caps the accepted blend-sheet
// size; non-positive values fall back to defaults.
func NewDosingService(catalog ports.ReagentCatalog, metrics *telemetry.Metrics, logger *slog.Logger, batchMaxWorkers, batchMaxItems int) *DosingService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if batchMaxWorkers < 1 {
		batchMaxWorkers = defaultBatchMaxWorkers
	}
	if batchMaxItems < 1 {
		batchMaxItems = defaultBatchMaxItems
	}
	return &DosingService{
		catalog:         catalog,
		metrics:         metrics,
		logger:          logger,
		batchMaxWorkers: batchMaxWorkers,
		batchMaxItems:   batchMaxItems,
	}
}

// Convert computes a single dosing conversion.
func (s *DosingService) Convert(ctx context.Context, req ports.ConvertRequest) (*ports.ConvertResult, error) {
	s.logger.InfoContext(ctx, "converting dose",
		slog.String("family", req.Family.String()),
		slog.Float64("volume_ml", req.VolumeML),
	)

	result, err := s.convert(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "conversion failed",
			slog.String("operation", "Convert"),
			slog.String("family", req.Family.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return result, nil
}

// ConvertBatch converts every item of a blend sheet against one shared
// target volume. Items succeed or fail independently; only request-level
// problems (bad volume, empty or oversized sheet) fail the whole call.
func (s *DosingService) ConvertBatch(ctx context.Context, req ports.BatchConvertRequest) (*ports.BatchConvertResult, error) {
	s.logger.InfoContext(ctx, "converting batch",
		slog.Int("items", len(req.Items)),
		slog.Float64("volume_ml", req.VolumeML),
	)

	// The shared volume is a property of the whole sheet: when it is invalid
	// no item could succeed, so the batch is rejected outright instead of
	// producing one identical error per item.
	if req.VolumeML <= 0 {
		s.logger.ErrorContext(ctx, "batch rejected",
			slog.String("operation", "ConvertBatch"),
			slog.Any("error", dose.ErrInvalidVolume),
		)
		return nil, dose.ErrInvalidVolume
	}
	if len(req.Items) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"items": domain.MsgMustNotEmpty,
		}}
	}
	if len(req.Items) > s.batchMaxItems {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"items": fmt.Sprintf("must not exceed %d items", s.batchMaxItems),
		}}
	}

	// All workers share one memoization cache so duplicate reagent names on
	// a sheet resolve with a single catalog call.
	if reqcache.FromContext(ctx) == nil {
		ctx = reqcache.WithCache(ctx, reqcache.New())
	}

	outcomes := fanout.Run(ctx, s.batchMaxWorkers, req.Items,
		func(ctx context.Context, item ports.BatchItem) (*ports.ConvertResult, error) {
			return s.convert(ctx, ports.ConvertRequest{
				Family:        item.Family,
				VolumeML:      req.VolumeML,
				Concentration: item.Concentration,
				Amount:        item.Amount,
				MolarMass:     item.MolarMass,
				Reagent:       item.Reagent,
			})
		})

	result := &ports.BatchConvertResult{
		Converted: make([]ports.BatchItemResult, 0, len(outcomes)),
		Errors:    make([]ports.BatchItemError, 0),
	}
	for i, outcome := range outcomes {
		if outcome.Err != nil {
			result.Errors = append(result.Errors, ports.BatchItemError{
				Index: i,
				Label: req.Items[i].Label,
				Err:   outcome.Err,
			})
			continue
		}
		result.Converted = append(result.Converted, ports.BatchItemResult{
			Index:  i,
			Label:  req.Items[i].Label,
			Result: *outcome.Value,
		})
	}

	s.logger.InfoContext(ctx, "batch conversion complete",
		slog.Int("succeeded", len(result.Converted)),
		slog.Int("failed", len(result.Errors)),
	)

	return result, nil
}

// convert runs one conversion end to end: request-shape validation, molar
// mass resolution, engine guards, then the requested directions.
func (s *DosingService) convert(ctx context.Context, req ports.ConvertRequest) (result *ports.ConvertResult, err error) {
	defer func() { s.recordConversion(ctx, req, err) }()

	if !req.Family.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"family": fmt.Sprintf("invalid: %q", req.Family),
		}}
	}
	if req.Concentration == nil && req.Amount == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"concentration": "one of concentration or amount is required",
			"amount":        "one of concentration or amount is required",
		}}
	}
	if !req.Family.RequiresMolarMass() {
		fields := make(map[string]string)
		if req.MolarMass != nil {
			fields["molar_mass"] = fmt.Sprintf("not applicable to family %q", req.Family)
		}
		if req.Reagent != "" {
			fields["reagent"] = fmt.Sprintf("not applicable to family %q", req.Family)
		}
		if len(fields) > 0 {
			return nil, &domain.ValidationError{Fields: fields}
		}
	}

	// The volume guard runs before molar-mass resolution so an invalid
	// volume never costs a catalog call.
	if req.VolumeML <= 0 {
		return nil, dose.ErrInvalidVolume
	}

	conv := dose.Conversion{Family: req.Family, VolumeML: req.VolumeML}
	result = &ports.ConvertResult{Family: req.Family, VolumeML: req.VolumeML}

	if req.Family.RequiresMolarMass() {
		molarMass, source, resolveErr := s.resolveMolarMass(ctx, req)
		if resolveErr != nil {
			return nil, resolveErr
		}
		conv.MolarMass = molarMass
		result.MolarMass = &molarMass
		result.Reagent = source
	}

	if err := conv.Validate(); err != nil {
		return nil, err
	}

	if req.Concentration != nil {
		amount, fwdErr := conv.Forward(*req.Concentration)
		if fwdErr != nil {
			return nil, fwdErr
		}
		result.Amount = &amount
	}
	if req.Amount != nil {
		concentration, revErr := conv.Reverse(*req.Amount)
		if revErr != nil {
			return nil, revErr
		}
		result.Concentration = &concentration
	}

	return result, nil
}

// resolveMolarMass returns the molar mass for a molar-family request and the
// catalog name it came from (empty when supplied directly). An explicit
// molar mass wins over a reagent name when both are provided.
func (s *DosingService) resolveMolarMass(ctx context.Context, req ports.ConvertRequest) (float64, string, error) {
	if req.MolarMass != nil {
		return *req.MolarMass, "", nil
	}
	if req.Reagent == "" {
		return 0, "", &domain.ValidationError{Fields: map[string]string{
			"molar_mass": fmt.Sprintf("family %q requires molar_mass or reagent", req.Family),
		}}
	}

	r, err := s.lookupReagent(ctx, req.Reagent)
	if err != nil {
		return 0, "", fmt.Errorf("resolving reagent %q: %w", req.Reagent, err)
	}
	return r.MolarMass, r.Name, nil
}

// lookupReagent fetches a reagent through the per-request cache when one is
// present, so repeated names on a blend sheet hit the catalog once.
func (s *DosingService) lookupReagent(ctx context.Context, name string) (*reagent.Reagent, error) {
	fetch := func(ctx context.Context) (*reagent.Reagent, error) {
		return s.catalog.GetReagent(ctx, name)
	}
	if cache := reqcache.FromContext(ctx); cache != nil {
		return reqcache.GetOrFetch(ctx, cache, "reagent:"+name, fetch)
	}
	return fetch(ctx)
}

// recordConversion increments dosing.conversion.total once per requested
// direction. Guard and validation failures count against every direction
// the request asked for.
func (s *DosingService) recordConversion(ctx context.Context, req ports.ConvertRequest, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	record := func(direction string) {
		s.metrics.ConversionTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrFamily.String(req.Family.String()),
			telemetry.AttrDirection.String(direction),
			telemetry.AttrResult.String(result),
		))
	}

	if req.Concentration != nil {
		record("forward")
	}
	if req.Amount != nil {
		record("reverse")
	}
}
