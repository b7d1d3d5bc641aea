package eval

import (
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/tzubiri/chesscore/pkg/board"
)

// squareWeight returns the position-multiplier for a piece landing on sq, checking corner,
// corner-touch, center, center-cross and center-diagonal classes in that order; the first
// match wins. Returns 1.0 when no SquareMultipliers are configured.
func squareWeight(kind board.Piece, sq board.Square, sm lang.Optional[SquareMultipliers]) float64 {
	m, ok := sm.V()
	if !ok {
		return 1.0
	}

	switch {
	case isCorner(sq):
		if kind == board.Rook {
			return m[4]
		}
		return m[3]
	case isCornerTouch(sq):
		if kind == board.Rook {
			return m[6]
		}
		return m[5]
	case isCenter(sq):
		return m[0]
	case isCenterCross(sq):
		return m[1]
	case isCenterDiagonal(sq):
		return m[2]
	default:
		return 1.0
	}
}

func isCenter(sq board.Square) bool {
	return (sq.Col == 3 || sq.Col == 4) && (sq.Row == 3 || sq.Row == 4)
}

func isCenterCross(sq board.Square) bool {
	switch sq.Col {
	case 2:
		return sq.Row == 3 || sq.Row == 4
	case 3, 4:
		return sq.Row == 2 || sq.Row == 5
	case 5:
		return sq.Row == 3 || sq.Row == 4
	default:
		return false
	}
}

func isCenterDiagonal(sq board.Square) bool {
	return (sq.Col == 2 || sq.Col == 5) && (sq.Row == 2 || sq.Row == 5)
}

func isCorner(sq board.Square) bool {
	return (sq.Col == 0 || sq.Col == 7) && (sq.Row == 0 || sq.Row == 7)
}

func isCornerTouch(sq board.Square) bool {
	return ((sq.Col == 1 || sq.Col == 6) && (sq.Row == 0 || sq.Row == 7)) ||
		((sq.Row == 1 || sq.Row == 6) && (sq.Col == 0 || sq.Col == 7))
}
