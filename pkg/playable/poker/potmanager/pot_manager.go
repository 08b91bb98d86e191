package potmanager

import (
	"sort"

	"github.com/google/uuid"
	"holdem-engine/pkg/playable"
)

// PotManager keeps track of how much each participant put into the pot during a hand
// and settles the pot, including side pots, at showdown
type PotManager struct {
	contributions map[uuid.UUID]int
	participants  map[uuid.UUID]Participant
	folded        map[uuid.UUID]bool
	size          int

	// button and seats are used to hand out odd chips starting left of the button
	button int
	seats  int
}

// New instantiates a new PotManager for a single hand
func New(button, seats int) *PotManager {
	return &PotManager{
		contributions: make(map[uuid.UUID]int),
		participants:  make(map[uuid.UUID]Participant),
		folded:        make(map[uuid.UUID]bool),
		button:        button,
		seats:         seats,
	}
}

// Bet adds the amount to the participant's contribution
// The amount must be what the participant actually put in (i.e., already capped at their stack)
func (p *PotManager) Bet(pt Participant, amount int) error {
	if amount <= 0 {
		return playable.NewValidationError("bet must be greater than zero, got %d", amount)
	}

	if p.folded[pt.ID()] {
		return playable.NewValidationError("participant in seat %d has folded", pt.Seat())
	}

	p.participants[pt.ID()] = pt
	p.contributions[pt.ID()] += amount
	p.size += amount

	return nil
}

// Fold forfeits the participant's claim on the pot
// Anything they already contributed stays in the pot
func (p *PotManager) Fold(pt Participant) {
	p.folded[pt.ID()] = true
}

// Size returns the total amount in the pot
func (p *PotManager) Size() int {
	return p.size
}

// Contribution returns how much the participant has in the pot
func (p *PotManager) Contribution(pt Participant) int {
	return p.contributions[pt.ID()]
}

// Contributions returns a copy of every participant's contribution
func (p *PotManager) Contributions() map[uuid.UUID]int {
	c := make(map[uuid.UUID]int, len(p.contributions))
	for id, amount := range p.contributions {
		c[id] = amount
	}

	return c
}

// Pots breaks the pot into the main pot and side pots
// Each pot is capped by an all-in amount and lists who can win it. Chips above the
// deepest live contribution (from a folded participant) are added to the last pot.
func (p *PotManager) Pots() Pots {
	levels := make([]int, 0, len(p.contributions))
	seen := make(map[int]bool)
	for id, amount := range p.contributions {
		if amount > 0 && !p.folded[id] && !seen[amount] {
			seen[amount] = true
			levels = append(levels, amount)
		}
	}
	sort.Ints(levels)

	pots := make(Pots, 0, len(levels))
	prev := 0
	for _, level := range levels {
		pot := &Pot{}
		for id, amount := range p.contributions {
			if amount > prev {
				pot.Amount += min(amount, level) - prev
			}

			if amount >= level && !p.folded[id] {
				pot.Eligible = append(pot.Eligible, p.participants[id])
			}
		}

		p.sortBySeat(pot.Eligible)
		pots = append(pots, pot)
		prev = level
	}

	excess := 0
	for _, amount := range p.contributions {
		if amount > prev {
			excess += amount - prev
		}
	}

	if excess > 0 {
		if len(pots) == 0 {
			pots = append(pots, &Pot{})
		}

		pots[len(pots)-1].Amount += excess
	}

	return pots
}

// Divvy settles the pot
// rankings is a list of tiers, best hand first. Each tier holds the participants that tied.
// Folded participants must not be ranked. Returns what each participant was paid.
//
// For each winner, smallest contribution first, their contribution caps what they can take
// from every other participant. That layer is split between the winners in the tier who
// covered it. Whatever is left stays in the pot for the next tier. Odd chips go to the
// winners closest to the left of the button. Anything no ranked participant can claim is
// returned to whoever put it in.
func (p *PotManager) Divvy(rankings [][]Participant) (map[uuid.UUID]int, error) {
	if err := p.verify(); err != nil {
		return nil, err
	}

	for _, tier := range rankings {
		for _, pt := range tier {
			if p.contributions[pt.ID()] == 0 {
				return nil, playable.NewSettlementError("participant in seat %d did not contribute to the pot", pt.Seat())
			}

			if p.folded[pt.ID()] {
				return nil, playable.NewSettlementError("participant in seat %d folded and cannot win the pot", pt.Seat())
			}
		}
	}

	payouts := make(map[uuid.UUID]int)
	for _, tier := range rankings {
		if p.size == 0 {
			break
		}

		winners := make([]Participant, len(tier))
		copy(winners, tier)
		p.sortBySeat(winners)
		sort.SliceStable(winners, func(i, j int) bool {
			return p.contributions[winners[i].ID()] < p.contributions[winners[j].ID()]
		})

		for i, winner := range winners {
			waged := p.contributions[winner.ID()]
			if waged == 0 {
				continue
			}

			winnings := 0
			for id, amount := range p.contributions {
				take := min(waged, amount)
				p.contributions[id] -= take
				winnings += take
			}

			p.size -= winnings
			p.award(winners[i:], winnings, payouts)
		}
	}

	// uncalled chips go back to their owner
	for id, amount := range p.contributions {
		if amount == 0 {
			continue
		}

		p.participants[id].AddChips(amount)
		payouts[id] += amount
		p.contributions[id] = 0
		p.size -= amount
	}

	if p.size != 0 {
		return payouts, playable.NewSettlementError("pot has %d chips left after settlement", p.size)
	}

	return payouts, nil
}

// Refund returns every contribution to the participant who made it and empties the pot
func (p *PotManager) Refund() map[uuid.UUID]int {
	refunds := make(map[uuid.UUID]int, len(p.contributions))
	for id, amount := range p.contributions {
		if amount > 0 {
			p.participants[id].AddChips(amount)
			refunds[id] = amount
		}

		p.contributions[id] = 0
	}

	p.size = 0
	return refunds
}

// award splits the amount between the winners
// winners must already be ordered left of the button, which decides who gets the odd chips
func (p *PotManager) award(winners []Participant, amount int, payouts map[uuid.UUID]int) {
	ordered := make([]Participant, len(winners))
	copy(ordered, winners)
	p.sortBySeat(ordered)

	share := amount / len(ordered)
	remainder := amount % len(ordered)
	for i, winner := range ordered {
		winnings := share
		if i < remainder {
			winnings++
		}

		if winnings == 0 {
			continue
		}

		winner.AddChips(winnings)
		payouts[winner.ID()] += winnings
	}
}

// verify ensures the contributions add up to the pot size
func (p *PotManager) verify() error {
	total := 0
	for _, amount := range p.contributions {
		total += amount
	}

	if total != p.size {
		return playable.NewSettlementError("contributions total %d but the pot is %d", total, p.size)
	}

	return nil
}

// sortBySeat orders participants starting with the first seat left of the button
func (p *PotManager) sortBySeat(participants []Participant) {
	sort.SliceStable(participants, func(i, j int) bool {
		return p.distanceFromButton(participants[i].Seat()) < p.distanceFromButton(participants[j].Seat())
	})
}

func (p *PotManager) distanceFromButton(seat int) int {
	if p.seats <= 0 {
		return seat
	}

	return ((seat-p.button-1)%p.seats + p.seats) % p.seats
}
