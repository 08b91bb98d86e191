package texasholdem

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Variant specifies the variant of Texas Hold'em
// The variant decides how many hole cards each player is dealt
type Variant string

// Variant constants
const (
	Standard Variant = "standard"
	// LazyPineapple deals three hole cards that are kept until the showdown
	LazyPineapple Variant = "lazy-pineapple"
)

var validVariants = map[Variant]bool{
	Standard:      true,
	LazyPineapple: true,
}

// HoleCards returns the number of hole cards for the game
func (v Variant) HoleCards() int {
	if v == LazyPineapple {
		return 3
	}

	return 2
}

func (v Variant) String() string {
	switch v {
	case Standard:
		return "Standard"
	case LazyPineapple:
		return "Lazy Pineapple"
	}

	panic(fmt.Sprintf("unknown variant: %s", string(v)))
}

// MarshalJSON encodes to JSON
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		HoleCards int    `json:"holeCards"`
	}{
		ID:        string(v),
		Name:      v.String(),
		HoleCards: v.HoleCards(),
	})
}

// VariantFromString returns the variant from a string
func VariantFromString(s string) (Variant, error) {
	variant := Variant(strings.ToLower(s))
	if _, ok := validVariants[variant]; ok {
		return variant, nil
	}

	return "", fmt.Errorf("invalid variant: %s", s)
}
