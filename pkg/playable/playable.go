package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"holdem-engine/pkg/deck"
)

// LogMessage is an entry in the history of a hand
// If PlayerIDs is empty, it's a general statement, otherwise the message is about those players
type LogMessage struct {
	UUID      string      `json:"uuid"`
	PlayerIDs []uuid.UUID `json:"playerIds"`
	Cards     []deck.Card `json:"cards"`
	Message   string      `json:"message"`
	Time      time.Time   `json:"time"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID uuid.UUID, format string, a ...interface{}) *LogMessage {
	var playerIDs []uuid.UUID
	if playerID != uuid.Nil {
		playerIDs = []uuid.UUID{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// CardsLogMessage returns a new LogMessage that reveals cards
func CardsLogMessage(playerID uuid.UUID, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(playerID, format, a...)
	lm.Cards = append([]deck.Card(nil), cards...)
	return lm
}
