package search

import (
	"context"

	"github.com/seekerror/logw"

	"github.com/tzubiri/chesscore/pkg/board"
	"github.com/tzubiri/chesscore/pkg/cache"
	"github.com/tzubiri/chesscore/pkg/eval"
)

// ChooseBestMove searches pos to plies ply depth and returns the move judged best for
// active to move, together with its resulting score. ok is false when active has zero
// pseudo-legal moves, in which case move and score are the zero value. Ties are broken by
// move-generation order: the first move to reach a given score keeps it.
func ChooseBestMove(ctx context.Context, pos *board.Position, active board.Color, plies int, opts eval.Options, c *cache.Cache) (move board.Move, score eval.Score, ok bool) {
	moves := board.GenerateMoves(pos, active)
	if len(moves) == 0 {
		logw.Infof(ctx, "ChooseBestMove: no legal moves for %v", active)
		return board.Move{}, eval.Score{}, false
	}

	m := Minimax{Options: opts, Cache: c}
	next := active.Opponent()

	best := eval.NegInfScore
	bestMove := moves[0]
	found := false

	for _, mv := range moves {
		child, applied := pos.Apply(mv)
		if !applied {
			continue
		}

		s := m.Score(child, next, active, plies-1)
		if !found || eval.Less(best, s) {
			best = s
			bestMove = mv
			found = true
		}
	}

	if !found {
		logw.Infof(ctx, "ChooseBestMove: no applicable moves for %v", active)
		return board.Move{}, eval.Score{}, false
	}
	logw.Infof(ctx, "ChooseBestMove: %v chooses %v at %v plies, score %v", active, bestMove, plies, best)
	return bestMove, best, true
}
