package ports

import (
	"context"

	"github.com/jsamuelsen11/dosecalc-service/internal/domain/reagent"
)

// ReagentCatalog defines the client port for the downstream chemical
// registry. Implemented by the ACL adapter; called by the application layer
// and the reagent endpoints. Methods map 1:1 to downstream API endpoints
// using domain terminology: the ACL translates between our "Reagent" concept
// and the downstream "Compound" concept.
type ReagentCatalog interface {
	// ListReagents returns all reagents known to the registry.
	ListReagents(ctx context.Context) ([]reagent.Reagent, error)

	// GetReagent returns a single reagent by its registry name.
	// Returns domain.ErrNotFound if the reagent does not exist and
	// domain.ErrUnavailable when the registry cannot be reached.
	GetReagent(ctx context.Context, name string) (*reagent.Reagent, error)
}
