// Package search implements the depth-bounded minimax search driver over pkg/board
// states, scored by pkg/eval and memoized through pkg/cache.
package search

import (
	"github.com/tzubiri/chesscore/pkg/board"
	"github.com/tzubiri/chesscore/pkg/eval"
)

// Status is the outcome of a terminality check at a search node.
type Status int

const (
	// InProgress means the game has not ended at this node; search must recurse.
	InProgress Status = iota
	// Draw covers both kings gone, the 100-halfmove clock expiring, or the active color
	// having zero pseudo-legal moves -- stalemate and checkmate-by-starvation are
	// deliberately conflated into the same outcome.
	Draw
	// Win means exactly one side's king remains on the board.
	Win
)

// gameStatus determines whether pos is terminal for active to move, and if it is a win,
// which color won.
func gameStatus(pos *board.Position, active board.Color) (status Status, winner board.Color) {
	whiteKing := pos.HasKing(board.White)
	blackKing := pos.HasKing(board.Black)

	if !whiteKing && !blackKing {
		return Draw, board.ZeroColor
	}
	if !whiteKing {
		return Win, board.Black
	}
	if !blackKing {
		return Win, board.White
	}
	if pos.HalfMoves >= 100 {
		return Draw, board.ZeroColor
	}
	if len(board.GenerateMoves(pos, active)) == 0 {
		return Draw, board.ZeroColor
	}
	return InProgress, board.ZeroColor
}

// scoreForWinner returns the terminal win/loss score seen from perspective's point of view.
func scoreForWinner(winner, perspective board.Color) eval.Score {
	if winner == perspective {
		return eval.WinScore
	}
	return eval.LossScore
}
