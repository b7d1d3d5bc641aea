package eval

import "github.com/tzubiri/chesscore/pkg/board"

// isBackwardPawn reports whether the pawn at pieces[i] is backward: the square directly
// ahead is on the board, no friendly pawn exists on an adjacent file at or behind it, and
// some enemy pawn attacks the square directly ahead.
func isBackwardPawn(pos *board.Position, i int) bool {
	pc := pos.Pieces[i]
	if !pc.Alive || pc.Kind != board.Pawn {
		return false
	}

	direction := 1
	if pc.Color == board.Black {
		direction = -1
	}
	forward := board.Square{Col: pc.Square.Col, Row: pc.Square.Row + direction}
	if !forward.IsValid() {
		return false
	}

	for _, dc := range [2]int{-1, 1} {
		adjCol := pc.Square.Col + dc
		if adjCol < 0 || adjCol > 7 {
			continue
		}
		for j := range pos.Pieces {
			other := pos.Pieces[j]
			if !other.Alive || other.Kind != board.Pawn || other.Color != pc.Color || other.Square.Col != adjCol {
				continue
			}
			if pc.Color == board.White && other.Square.Row <= pc.Square.Row {
				return false
			}
			if pc.Color == board.Black && other.Square.Row >= pc.Square.Row {
				return false
			}
		}
	}

	opponent := pc.Color.Opponent()
	for j := range pos.Pieces {
		other := pos.Pieces[j]
		if !other.Alive || other.Kind != board.Pawn || other.Color != opponent {
			continue
		}
		attackDirection := 1
		if opponent == board.Black {
			attackDirection = -1
		}
		if other.Square.Row+attackDirection != forward.Row {
			continue
		}
		if other.Square.Col-1 == pc.Square.Col || other.Square.Col+1 == pc.Square.Col {
			return true
		}
	}
	return false
}
