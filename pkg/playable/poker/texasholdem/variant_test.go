package texasholdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantFromString(t *testing.T) {
	a := assert.New(t)

	v, err := VariantFromString("Lazy-Pineapple")
	a.NoError(err)
	a.Equal(LazyPineapple, v)
	a.Equal(3, v.HoleCards())
	a.Equal("Lazy Pineapple", v.String())

	v, err = VariantFromString("standard")
	a.NoError(err)
	a.Equal(2, v.HoleCards())

	v, err = VariantFromString("omaha")
	a.EqualError(err, "invalid variant: omaha")
	a.Equal(Variant(""), v)
	a.Panics(func() {
		_ = Variant("omaha").String()
	})

	b, err := json.Marshal(LazyPineapple)
	a.NoError(err)
	a.JSONEq(`{"id":"lazy-pineapple","name":"Lazy Pineapple","holeCards":3}`, string(b))
}

func TestStreet(t *testing.T) {
	a := assert.New(t)

	a.Equal("pre-flop", StreetPreFlop.String())
	a.Equal("showdown", StreetShowdown.String())
	a.False(StreetWaiting.IsBettingRound())
	a.True(StreetPreFlop.IsBettingRound())
	a.True(StreetRiver.IsBettingRound())
	a.False(StreetShowdown.IsBettingRound())

	b, err := json.Marshal(StreetTurn)
	a.NoError(err)
	a.JSONEq(`{"id":3,"name":"turn"}`, string(b))
}
