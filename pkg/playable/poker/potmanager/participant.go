package potmanager

import "github.com/google/uuid"

// Participant provides an interface for identifying a participant and paying out winnings
type Participant interface {
	ID() uuid.UUID
	// Seat is where the participant is seated at the table
	Seat() int
	AddChips(amount int)
}
