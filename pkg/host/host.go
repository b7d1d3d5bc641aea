// Package host is the external call-shape boundary of the evaluation and search core. It
// is the only package in this module that deals in numeric status codes and packed
// parallel slices rather than idiomatic Go types; every other package uses *board.Position,
// error and ordinary structs.
package host

import (
	"context"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/tzubiri/chesscore/pkg/board"
	"github.com/tzubiri/chesscore/pkg/cache"
	"github.com/tzubiri/chesscore/pkg/eval"
	"github.com/tzubiri/chesscore/pkg/search"
)

// Status is a call outcome code.
type Status int

const (
	// StatusValidationFailure means a malformed input was rejected; outputs are untouched.
	StatusValidationFailure Status = 0
	// StatusOK means a move was chosen and written to the output.
	StatusOK Status = 1
	// StatusNoLegalMoves means the position is terminal for the active color at the root;
	// outputs are untouched.
	StatusNoLegalMoves Status = 2
)

// PieceInput is one piece's parallel-array row: kind, color, board column, board row, and
// whether it has moved.
type PieceInput struct {
	Kind  board.Piece
	Color board.Color
	Col   int
	Row   int
	Moved bool
}

// EnPassantInput carries the en-passant window as four sentinel-or-coordinate fields: -1
// in any field means the window is closed.
type EnPassantInput struct {
	TargetCol, TargetRow   int
	CaptureCol, CaptureRow int
}

func (e EnPassantInput) toWindow() board.EnPassantWindow {
	if e.TargetCol < 0 || e.TargetRow < 0 || e.CaptureCol < 0 || e.CaptureRow < 0 {
		return board.EnPassantWindow{Target: board.NoSquare, Capture: board.NoSquare}
	}
	return board.EnPassantWindow{
		Target:  board.NewSquare(e.TargetCol, e.TargetRow),
		Capture: board.NewSquare(e.CaptureCol, e.CaptureRow),
		Set:     true,
	}
}

// EvalParams packs the optional evaluator weights shared by Evaluate and ChooseBestMove
// behind presence flags instead of sentinel magic numbers.
type EvalParams struct {
	PieceValues [6]float64

	HasPawnRankValues bool
	PawnRankValues    eval.PawnRankValues

	HasBackwardPawnValue bool
	BackwardPawnValue    float64

	HasSquareMultipliers bool
	SquareMultipliers    eval.SquareMultipliers

	ControlWeight float64

	HasOppositeBishopDrawFactor bool
	OppositeBishopDrawFactor    float64
}

func (p EvalParams) toOptions() eval.Options {
	opts := eval.Options{
		PieceValues:   p.PieceValues,
		ControlWeight: p.ControlWeight,
	}
	if p.HasPawnRankValues {
		opts.PawnRankValues = lang.Some(p.PawnRankValues)
	}
	if p.HasBackwardPawnValue {
		opts.BackwardPawnValue = lang.Some(p.BackwardPawnValue)
	}
	if p.HasSquareMultipliers {
		opts.SquareMultipliers = lang.Some(p.SquareMultipliers)
	}
	if p.HasOppositeBishopDrawFactor {
		opts.OppositeBishopDrawFactor = lang.Some(p.OppositeBishopDrawFactor)
	}
	return opts
}

// EvaluateInput is the call shape for a static evaluation of a described position.
type EvaluateInput struct {
	Pieces      []PieceInput
	Perspective board.Color
	Params      EvalParams
}

// Evaluate validates in and, on success, returns the (material, heuristic) score of the
// described position from Perspective's point of view. ok is false on any validation
// failure. A nil or empty Pieces slice describes an empty board and is accepted.
func Evaluate(in EvaluateInput) (material, heuristic float64, ok bool) {
	pos, err := buildPosition(in.Pieces, board.EnPassantWindow{Target: board.NoSquare, Capture: board.NoSquare}, 0)
	if err != nil {
		return 0, 0, false
	}
	if !in.Perspective.IsValid() {
		return 0, 0, false
	}

	score := eval.Evaluate(pos, in.Perspective, in.Params.toOptions())
	return score.Material, score.Heuristic, true
}

// SearchInput is the call shape for a best-move search from a described position.
type SearchInput struct {
	Pieces    []PieceInput
	Active    board.Color
	Plies     int
	EnPassant EnPassantInput
	HalfMoves int
	Params    EvalParams
	Cache     *cache.Cache
}

// SearchOutput is the chosen move's four coordinates; valid only when the call returns
// StatusOK.
type SearchOutput struct {
	FromCol, FromRow int
	ToCol, ToRow     int
}

// ChooseBestMove validates in, then searches to Plies ply depth and reports the best move
// for Active to move. See Status for the outcome codes; on anything but StatusOK, out is
// the zero value.
func ChooseBestMove(ctx context.Context, in SearchInput) (out SearchOutput, status Status) {
	if !in.Active.IsValid() || in.Plies < 1 {
		logw.Errorf(ctx, "rejecting search: active=%v plies=%v", in.Active, in.Plies)
		return SearchOutput{}, StatusValidationFailure
	}

	pos, err := buildPosition(in.Pieces, in.EnPassant.toWindow(), in.HalfMoves)
	if err != nil {
		logw.Errorf(ctx, "rejecting search: %v", err)
		return SearchOutput{}, StatusValidationFailure
	}

	move, _, ok := search.ChooseBestMove(ctx, pos, in.Active, in.Plies, in.Params.toOptions(), in.Cache)
	if !ok {
		return SearchOutput{}, StatusNoLegalMoves
	}

	return SearchOutput{
		FromCol: move.From.Col,
		FromRow: move.From.Row,
		ToCol:   move.To.Col,
		ToRow:   move.To.Row,
	}, StatusOK
}

// NewCache allocates a transposition cache with the given byte budget. It returns nil on
// too small a budget; nil is accepted everywhere a cache is accepted, so callers never
// need to special-case allocation failure.
func NewCache(ctx context.Context, maxBytes uint64) *cache.Cache {
	return cache.New(ctx, maxBytes)
}

func buildPosition(pieces []PieceInput, ep board.EnPassantWindow, halfmoves int) (*board.Position, error) {
	placements := make([]board.Placement, len(pieces))
	for i, p := range pieces {
		placements[i] = board.Placement{
			Square: board.Square{Col: p.Col, Row: p.Row},
			Color:  p.Color,
			Piece:  p.Kind,
			Moved:  p.Moved,
		}
	}
	return board.NewPosition(placements, ep, halfmoves)
}
