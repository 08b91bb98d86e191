package potmanager

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Pot is the main pot or a side pot
// Only the eligible participants can win the amount
type Pot struct {
	Amount   int
	Eligible []Participant
}

type potJSON struct {
	Amount   int         `json:"amount"`
	Eligible []uuid.UUID `json:"eligible"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	ids := make([]uuid.UUID, len(p.Eligible))
	for i, p := range p.Eligible {
		ids[i] = p.ID()
	}

	return json.Marshal(potJSON{
		Amount:   p.Amount,
		Eligible: ids,
	})
}

// Pots is a collection of pots, main pot first
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}
