package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_IsValid(t *testing.T) {
	a := assert.New(t)
	a.True(Call.IsValid())
	a.True(Action("raise").IsValid())
	a.False(Action("discard").IsValid())
	a.False(Action("").IsValid())
}

func TestAction_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Raise)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":"raise","name":"Raise"}`, string(b))
}

func TestAction_LogMessage(t *testing.T) {
	assert.Equal(t, "folded", Fold.LogMessage(0))
	assert.Equal(t, "checked", Check.LogMessage(0))
	assert.Equal(t, "called 50", Call.LogMessage(50))
	assert.Equal(t, "bet 25", Bet.LogMessage(25))
	assert.Equal(t, "raised to 100", Raise.LogMessage(100))
	assert.Panics(t, func() {
		_ = Action("discard").String()
	})
}
