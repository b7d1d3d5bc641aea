package host_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tzubiri/chesscore/pkg/board"
	"github.com/tzubiri/chesscore/pkg/host"
)

var standardValues = [6]float64{1, 3, 3, 5, 9, 100}

func twoKingsAndRook() []host.PieceInput {
	return []host.PieceInput{
		{Kind: board.King, Color: board.White, Col: 4, Row: 0},
		{Kind: board.King, Color: board.Black, Col: 4, Row: 7},
		{Kind: board.Rook, Color: board.White, Col: 0, Row: 0},
	}
}

func TestEvaluate_MaterialSymmetry(t *testing.T) {
	params := host.EvalParams{PieceValues: standardValues}

	whiteMat, _, ok := host.Evaluate(host.EvaluateInput{Pieces: twoKingsAndRook(), Perspective: board.White, Params: params})
	assert.True(t, ok)

	blackMat, _, ok := host.Evaluate(host.EvaluateInput{Pieces: twoKingsAndRook(), Perspective: board.Black, Params: params})
	assert.True(t, ok)

	assert.Equal(t, whiteMat, -blackMat)
}

func TestEvaluate_RejectsInvalidPerspective(t *testing.T) {
	_, _, ok := host.Evaluate(host.EvaluateInput{
		Pieces:      twoKingsAndRook(),
		Perspective: board.Color(7),
		Params:      host.EvalParams{PieceValues: standardValues},
	})
	assert.False(t, ok)
}

func TestEvaluate_RejectsDuplicateSquare(t *testing.T) {
	_, _, ok := host.Evaluate(host.EvaluateInput{
		Pieces: []host.PieceInput{
			{Kind: board.King, Color: board.White, Col: 0, Row: 0},
			{Kind: board.King, Color: board.Black, Col: 0, Row: 0},
		},
		Perspective: board.White,
		Params:      host.EvalParams{PieceValues: standardValues},
	})
	assert.False(t, ok)
}

func TestChooseBestMove_SuccessWritesOutputs(t *testing.T) {
	in := host.SearchInput{
		Pieces:    twoKingsAndRook(),
		Active:    board.White,
		Plies:     2,
		EnPassant: host.EnPassantInput{TargetCol: -1, TargetRow: -1, CaptureCol: -1, CaptureRow: -1},
		Params:    host.EvalParams{PieceValues: standardValues},
	}
	out, status := host.ChooseBestMove(context.Background(), in)

	assert.Equal(t, host.StatusOK, status)
	assert.False(t, out.FromCol == 0 && out.FromRow == 0 && out.ToCol == 0 && out.ToRow == 0)
}

func TestChooseBestMove_RejectsZeroPlies(t *testing.T) {
	in := host.SearchInput{
		Pieces:    twoKingsAndRook(),
		Active:    board.White,
		Plies:     0,
		EnPassant: host.EnPassantInput{TargetCol: -1, TargetRow: -1, CaptureCol: -1, CaptureRow: -1},
		Params:    host.EvalParams{PieceValues: standardValues},
	}
	_, status := host.ChooseBestMove(context.Background(), in)
	assert.Equal(t, host.StatusValidationFailure, status)
}

func TestChooseBestMove_NoLegalMovesStatus(t *testing.T) {
	in := host.SearchInput{
		Pieces:    []host.PieceInput{{Kind: board.King, Color: board.White, Col: 0, Row: 0}},
		Active:    board.Black,
		Plies:     2,
		EnPassant: host.EnPassantInput{TargetCol: -1, TargetRow: -1, CaptureCol: -1, CaptureRow: -1},
		Params:    host.EvalParams{PieceValues: standardValues},
	}
	out, status := host.ChooseBestMove(context.Background(), in)
	assert.Equal(t, host.StatusNoLegalMoves, status)
	assert.Equal(t, host.SearchOutput{}, out)
}

func TestNewCache_RejectsTooSmallBudget(t *testing.T) {
	c := host.NewCache(context.Background(), 1)
	assert.Nil(t, c)
}
