package texasholdem

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable/poker/potmanager"
)

// HandLog is the record of a settled hand
type HandLog struct {
	HandNumber int               `json:"handNumber"`
	Dealer     int               `json:"dealer"`
	Players    []*playerJSON     `json:"players"`
	Community  deck.Hand         `json:"community"`
	Pot        int               `json:"pot"`
	Pots       potmanager.Pots   `json:"pots"`
	Payouts    map[uuid.UUID]int `json:"payouts"`
}

// handLog records the hand, contributions and pots must be captured before the pot is divvied
func (g *Game) handLog(pots potmanager.Pots, size int, contributions, payouts map[uuid.UUID]int) *HandLog {
	players := make([]*playerJSON, len(g.players))
	for i, p := range g.players {
		players[i] = p.playerJSON(payouts[p.ID()])
		players[i].Contribution = contributions[p.ID()]
	}

	return &HandLog{
		HandNumber: g.handNumber,
		Dealer:     g.dealer,
		Players:    players,
		Community:  g.community.Clone(),
		Pot:        size,
		Pots:       pots,
		Payouts:    payouts,
	}
}

func (g *Game) logHand(h *HandLog) {
	for _, p := range h.Players {
		if p.Winnings == 0 {
			continue
		}

		fields := logrus.Fields{
			"hand":     h.HandNumber,
			"player":   p.Name,
			"winnings": p.Winnings,
			"chips":    p.Chips,
		}

		if p.Hand != "" {
			fields["cards"] = p.Cards.String()
			fields["rank"] = p.Hand
		}

		g.logger.WithFields(fields).Info("pot awarded")
	}

	g.logger.WithFields(logrus.Fields{
		"hand":      h.HandNumber,
		"pot":       h.Pot,
		"sidePots":  max(len(h.Pots)-1, 0),
		"community": h.Community.String(),
	}).Debug("hand settled")
}
