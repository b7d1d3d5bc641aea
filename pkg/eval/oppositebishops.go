package eval

import "github.com/tzubiri/chesscore/pkg/board"

// hasOppositeColorBishops reports whether each side has exactly one bishop and those two
// bishops sit on squares of opposite color.
func hasOppositeColorBishops(pos *board.Position) bool {
	var white, black board.Square
	whiteCount, blackCount := 0, 0

	for _, pc := range pos.Pieces {
		if !pc.Alive || pc.Kind != board.Bishop {
			continue
		}
		if pc.Color == board.White {
			whiteCount++
			white = pc.Square
		} else {
			blackCount++
			black = pc.Square
		}
	}

	if whiteCount != 1 || blackCount != 1 {
		return false
	}
	return (white.Col+white.Row)%2 != (black.Col+black.Row)%2
}
