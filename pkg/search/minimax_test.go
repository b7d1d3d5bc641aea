package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzubiri/chesscore/pkg/board"
	"github.com/tzubiri/chesscore/pkg/cache"
	"github.com/tzubiri/chesscore/pkg/eval"
	"github.com/tzubiri/chesscore/pkg/search"
)

var standardValues = [6]float64{1, 3, 3, 5, 9, 100}

func mustPos(t *testing.T, placements []board.Placement, halfmoves int) *board.Position {
	t.Helper()
	pos, err := board.NewPosition(placements, board.EnPassantWindow{Target: board.NoSquare, Capture: board.NoSquare}, halfmoves)
	require.NoError(t, err)
	return pos
}

// Only two kings, white to move, plies=3. Best-move search must report a move, and since
// no material exists on either side, the chosen score is a draw on material even though
// nothing in the position is actually terminal yet.
func TestChooseBestMove_OnlyTwoKingsIsAnyKingMoveWithZeroMaterial(t *testing.T) {
	pos := mustPos(t, []board.Placement{
		{Square: board.NewSquare(0, 0), Color: board.White, Piece: board.King},
		{Square: board.NewSquare(7, 7), Color: board.Black, Piece: board.King},
	}, 0)

	c := cache.New(context.Background(), 1<<20)
	move, score, ok := search.ChooseBestMove(context.Background(), pos, board.White, 3, eval.Options{PieceValues: standardValues}, c)

	require.True(t, ok)
	assert.Equal(t, board.King, mustPieceAt(t, pos, move.From))
	assert.Equal(t, float64(0), score.Material)
}

// White king, black king, white queen, 6 halfmoves away from the 100-halfmove draw
// ceiling. A plies=6 search must never recurse past halfmove_clock=100 without returning a
// draw score: along quiet lines the clock reaches 100 at the remaining-plies-0 nodes, where
// the status check returns a draw before any static evaluation, and ChooseBestMove must
// still report a move.
func TestChooseBestMove_StopsRecursionAtHalfmoveCeiling(t *testing.T) {
	pos := mustPos(t, []board.Placement{
		{Square: board.NewSquare(4, 0), Color: board.White, Piece: board.King},
		{Square: board.NewSquare(4, 7), Color: board.Black, Piece: board.King},
		{Square: board.NewSquare(3, 0), Color: board.White, Piece: board.Queen},
	}, 94)

	c := cache.New(context.Background(), 1<<20)
	_, _, ok := search.ChooseBestMove(context.Background(), pos, board.White, 6, eval.Options{PieceValues: standardValues}, c)

	require.True(t, ok)
}

func TestChooseBestMove_NoMovesReportsNotOK(t *testing.T) {
	pos := mustPos(t, []board.Placement{
		{Square: board.NewSquare(0, 0), Color: board.White, Piece: board.King},
	}, 0)
	// Black to move with no black pieces on board has zero pseudo-legal moves.
	c := cache.New(context.Background(), 1<<20)
	_, _, ok := search.ChooseBestMove(context.Background(), pos, board.Black, 2, eval.Options{PieceValues: standardValues}, c)
	assert.False(t, ok)
}

func TestMinimax_ReturnsPrimedCacheEntryVerbatim(t *testing.T) {
	pos := mustPos(t, []board.Placement{
		{Square: board.NewSquare(4, 0), Color: board.White, Piece: board.King},
		{Square: board.NewSquare(4, 7), Color: board.Black, Piece: board.King},
		{Square: board.NewSquare(0, 0), Color: board.White, Piece: board.Rook},
	}, 0)
	opts := eval.Options{PieceValues: standardValues}

	cold := cache.New(context.Background(), 1<<20)
	m := search.Minimax{Options: opts, Cache: cold}
	want := m.Score(pos, board.White, board.White, 2)

	warm := cache.New(context.Background(), 1<<20)
	key := cache.Hash(pos, board.White, 2)
	warm.Store(key, board.White, 2, eval.Score{Material: 999, Heuristic: -999})
	m2 := search.Minimax{Options: opts, Cache: warm}
	got := m2.Score(pos, board.White, board.White, 2)

	assert.NotEqual(t, want, got, "a primed cache entry must be returned verbatim instead of recomputed")
	assert.Equal(t, float64(999), got.Material)
}

func mustPieceAt(t *testing.T, pos *board.Position, sq board.Square) board.Piece {
	t.Helper()
	idx, ok := pos.At(sq)
	require.True(t, ok)
	return pos.Pieces[idx].Kind
}
