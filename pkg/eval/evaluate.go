package eval

import (
	"github.com/seekerror/stdlib/pkg/util/mathx"

	"github.com/tzubiri/chesscore/pkg/board"
)

// Evaluate computes the (material, heuristic) score of pos from perspective's point of
// view. Terminal-state handling (missing kings, halfmove clock, no legal moves) is the
// search driver's responsibility, not the evaluator's.
func Evaluate(pos *board.Position, perspective board.Color, opts Options) Score {
	var material, heuristic float64

	for i := range pos.Pieces {
		pc := pos.Pieces[i]
		if !pc.Alive {
			continue
		}

		materialPiece := opts.PieceValues[pc.Kind]
		pieceScore := materialPiece

		if pc.Kind == board.Pawn {
			if ranks, ok := opts.PawnRankValues.V(); ok {
				rank := pc.Square.Row + 1
				if pc.Color == board.Black {
					rank = 8 - pc.Square.Row
				}
				pieceScore = mathx.Max(pieceScore, ranks[rank])
			}
			if backward, ok := opts.BackwardPawnValue.V(); ok && isBackwardPawn(pos, i) {
				pieceScore = mathx.Min(pieceScore, backward)
			}
		}

		pieceScore *= squareWeight(pc.Kind, pc.Square, opts.SquareMultipliers)

		heuristicPiece := pieceScore - materialPiece

		sign := Unit(pc.Color) * Unit(perspective)
		material += sign * materialPiece
		heuristic += sign * heuristicPiece
	}

	if opts.ControlWeight != 0 {
		heuristic += opts.ControlWeight * controlScore(pos, perspective, opts)
	}

	if factor, ok := opts.OppositeBishopDrawFactor.V(); ok && hasOppositeColorBishops(pos) {
		heuristic *= factor
	}

	return Score{Material: material, Heuristic: heuristic}
}
