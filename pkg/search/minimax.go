package search

import (
	"github.com/tzubiri/chesscore/pkg/board"
	"github.com/tzubiri/chesscore/pkg/cache"
	"github.com/tzubiri/chesscore/pkg/eval"
)

// Minimax is a plain depth-bounded minimax search, perspective-fixed rather than negamax:
// the node maximizes when the active color equals the perspective color being searched
// for, and minimizes otherwise, instead of flipping sign on every ply.
type Minimax struct {
	Options eval.Options
	Cache   *cache.Cache
}

// Score returns the minimax value of pos at remainingPlies, with active to move, scored
// from perspective's point of view.
func (m Minimax) Score(pos *board.Position, active, perspective board.Color, remainingPlies int) eval.Score {
	key := cache.Hash(pos, active, remainingPlies)
	if score, ok := m.Cache.Lookup(key, active, remainingPlies); ok {
		return score
	}

	status, winner := gameStatus(pos, active)
	switch status {
	case Win:
		score := scoreForWinner(winner, perspective)
		m.Cache.Store(key, active, remainingPlies, score)
		return score
	case Draw:
		m.Cache.Store(key, active, remainingPlies, eval.DrawScore)
		return eval.DrawScore
	}

	if remainingPlies <= 0 {
		score := eval.Evaluate(pos, perspective, m.Options)
		m.Cache.Store(key, active, remainingPlies, score)
		return score
	}

	moves := board.GenerateMoves(pos, active)
	next := active.Opponent()

	maximize := active == perspective
	best := eval.PosInfScore
	if maximize {
		best = eval.NegInfScore
	}

	found := false
	for _, mv := range moves {
		child, ok := pos.Apply(mv)
		if !ok {
			continue
		}
		found = true

		current := m.Score(child, next, perspective, remainingPlies-1)
		if maximize {
			if eval.Less(best, current) {
				best = current
			}
		} else {
			if eval.Less(current, best) {
				best = current
			}
		}
	}

	if !found {
		// Every generated move was rejected by Apply; treat as no legal moves (draw).
		m.Cache.Store(key, active, remainingPlies, eval.DrawScore)
		return eval.DrawScore
	}

	m.Cache.Store(key, active, remainingPlies, best)
	return best
}
