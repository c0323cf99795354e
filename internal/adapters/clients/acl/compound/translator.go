package compound

import (
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/reagent"
)

// ToDomainReagent converts a downstream CompoundDTO to a domain Reagent
// entity. The registry's "compound" vocabulary stays on this side of the
// boundary; the rest of the service only ever sees reagents.
func ToDomainReagent(dto *CompoundDTO) reagent.Reagent {
	return reagent.Reagent{
		Name:      dto.Name,
		Formula:   dto.Formula,
		CASNumber: dto.CASNumber,
		MolarMass: dto.MolarMass,
	}
}

// ToDomainReagentList converts a downstream CompoundListResponseDTO to a
// slice of domain Reagent entities.
func ToDomainReagentList(dto CompoundListResponseDTO) []reagent.Reagent {
	reagents := make([]reagent.Reagent, len(dto.Compounds))
	for i := range dto.Compounds {
		reagents[i] = ToDomainReagent(&dto.Compounds[i])
	}
	return reagents
}
