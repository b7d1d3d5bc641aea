// Package eval contains position evaluation logic and utilities.
package eval

import (
	"fmt"

	"github.com/tzubiri/chesscore/pkg/board"
)

// Score is a two-component position score: Material dominates Heuristic under strict
// lexicographic ordering, so that no positional term, however extreme, can overturn a
// material-winning branch. It must never be collapsed into a single weighted scalar.
type Score struct {
	Material, Heuristic float64
}

// WinScore, LossScore and DrawScore are the three terminal scores the search driver
// returns for a position with no further moves to search.
var (
	WinScore  = Score{Material: 100000, Heuristic: 0}
	LossScore = Score{Material: -100000, Heuristic: 0}
	DrawScore = Score{Material: 0, Heuristic: 0}
)

// NegInfScore and PosInfScore are the minimax accumulator sentinels: starting points for
// the maximizing and minimizing search branches respectively, before any child is scored.
var (
	NegInfScore = Score{Material: -1e300, Heuristic: -1e300}
	PosInfScore = Score{Material: 1e300, Heuristic: 1e300}
)

// Compare returns -1, 0 or 1 as a is less than, equal to, or greater than b, comparing
// Material first and Heuristic only on a material tie.
func Compare(a, b Score) int {
	switch {
	case a.Material < b.Material:
		return -1
	case a.Material > b.Material:
		return 1
	case a.Heuristic < b.Heuristic:
		return -1
	case a.Heuristic > b.Heuristic:
		return 1
	default:
		return 0
	}
}

// Less reports whether a sorts strictly before b.
func Less(a, b Score) bool {
	return Compare(a, b) < 0
}

func (s Score) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", s.Material, s.Heuristic)
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) float64 {
	if c == board.White {
		return 1
	}
	return -1
}
