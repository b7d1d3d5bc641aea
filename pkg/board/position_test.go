package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzubiri/chesscore/pkg/board"
)

func TestNewPosition_OccupancyConsistency(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(4, 0), Color: board.White, Piece: board.King},
		{Square: board.NewSquare(4, 7), Color: board.Black, Piece: board.King},
		{Square: board.NewSquare(0, 0), Color: board.White, Piece: board.Rook},
	}
	pos, err := board.NewPosition(placements, board.EnPassantWindow{}, 0)
	require.NoError(t, err)

	for i, p := range placements {
		idx, ok := pos.At(p.Square)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
	assert.True(t, pos.IsEmpty(board.NewSquare(1, 1)))
}

func TestNewPosition_RejectsDuplicateSquare(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(0, 0), Color: board.White, Piece: board.King},
		{Square: board.NewSquare(0, 0), Color: board.Black, Piece: board.King},
	}
	_, err := board.NewPosition(placements, board.EnPassantWindow{}, 0)
	assert.Error(t, err)
}

func TestNewPosition_RejectsOffBoard(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(8, 0), Color: board.White, Piece: board.King},
	}
	_, err := board.NewPosition(placements, board.EnPassantWindow{}, 0)
	assert.Error(t, err)
}

func TestNewPosition_RejectsInvalidKindOrColor(t *testing.T) {
	_, err := board.NewPosition([]board.Placement{
		{Square: board.NewSquare(0, 0), Color: board.White, Piece: board.Piece(9)},
	}, board.EnPassantWindow{}, 0)
	assert.Error(t, err)

	_, err = board.NewPosition([]board.Placement{
		{Square: board.NewSquare(0, 0), Color: board.Color(9), Piece: board.King},
	}, board.EnPassantWindow{}, 0)
	assert.Error(t, err)
}

func TestPosition_CloneDoesNotAlias(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.NewSquare(4, 1), Color: board.White, Piece: board.Pawn},
	}, board.EnPassantWindow{}, 0)
	require.NoError(t, err)

	clone := pos.Clone()
	clone.Pieces[0].Alive = false

	assert.True(t, pos.Pieces[0].Alive)
	assert.False(t, clone.Pieces[0].Alive)
}

func TestPosition_KingSquare(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.NewSquare(4, 0), Color: board.White, Piece: board.King},
	}, board.EnPassantWindow{}, 0)
	require.NoError(t, err)

	sq, ok := pos.KingSquare(board.White)
	assert.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 0), sq)

	_, ok = pos.KingSquare(board.Black)
	assert.False(t, ok)
}
