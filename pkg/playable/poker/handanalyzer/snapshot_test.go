package handanalyzer

import (
	"testing"

	"holdem-engine/pkg/snapshot"
)

func TestEvaluate_snapshot(t *testing.T) {
	hands := []string{
		"Ah,Kh,Qh,Jh,0h,2c,3d",
		"9c,9d,9h,9s,Kc,Kd,2h",
		"3c,3d,3h,4c,4d,4h,5c",
		"2h,5h,7h,9h,Jh,Kh,Ac",
		"Ah,2c,3d,4s,5h,Kd,Kh",
		"Kc,Kd,9h,9s,4c,4d,2h",
		"Ah,Jd,9c,7s,3h,2d,4c",
	}

	ranks := make([]HandRank, len(hands))
	for i, h := range hands {
		ranks[i] = evaluate(h)
	}

	snapshot.Validate(t, ranks)
}
