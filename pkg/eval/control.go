package eval

import "github.com/tzubiri/chesscore/pkg/board"

// controlScore sums, per alive piece, the square-weight of every square it could
// pseudo-legally move to, signed by perspective.
func controlScore(pos *board.Position, perspective board.Color, opts Options) float64 {
	var total float64

	for i := range pos.Pieces {
		pc := pos.Pieces[i]
		if !pc.Alive {
			continue
		}

		var controlled float64
		for _, m := range board.GenerateMovesForPiece(pos, i) {
			controlled += squareWeight(pc.Kind, m.To, opts.SquareMultipliers)
		}

		total += Unit(pc.Color) * Unit(perspective) * controlled
	}
	return total
}
