// corebench drives a best-move search from the standard starting position through
// pkg/host, the same call shape an external embedder would use, at a single depth, and logs
// the chosen move and the time the search took.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/tzubiri/chesscore/pkg/board"
	"github.com/tzubiri/chesscore/pkg/host"
)

var version = build.NewVersion(0, 1, 0)

var (
	plies   = flag.Int("plies", 4, "Search depth in plies")
	cacheMB = flag.Uint64("cache_mb", 16, "Transposition cache budget in MB")
	control = flag.Float64("control_weight", 0, "Mobility/control term weight")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Infof(ctx, "corebench %v (%v ply, %vMB cache)", version, *plies, *cacheMB)

	c := host.NewCache(ctx, *cacheMB<<20)
	if c == nil {
		logw.Exitf(ctx, "cache budget too small: %vMB", *cacheMB)
	}

	in := host.SearchInput{
		Pieces:    initialPieces(),
		Active:    board.White,
		Plies:     *plies,
		EnPassant: host.EnPassantInput{TargetCol: -1, TargetRow: -1, CaptureCol: -1, CaptureRow: -1},
		Params: host.EvalParams{
			PieceValues:   [6]float64{1, 3, 3, 5, 9, 0},
			ControlWeight: *control,
		},
		Cache: c,
	}

	start := time.Now()
	out, status := host.ChooseBestMove(ctx, in)
	elapsed := time.Since(start)

	switch status {
	case host.StatusOK:
		logw.Infof(ctx, "best move (%v,%v)->(%v,%v) in %v", out.FromCol, out.FromRow, out.ToCol, out.ToRow, elapsed)
	case host.StatusNoLegalMoves:
		logw.Infof(ctx, "no legal moves at root")
	default:
		logw.Exitf(ctx, "validation failure")
	}
}

// initialPieces is the standard chess starting position, packed the way an external
// embedder would supply it to pkg/host.
func initialPieces() []host.PieceInput {
	var pieces []host.PieceInput

	backRank := []board.Piece{board.Rook, board.Knight, board.Bishop, board.Queen, board.King, board.Bishop, board.Knight, board.Rook}
	for col, kind := range backRank {
		pieces = append(pieces, host.PieceInput{Kind: kind, Color: board.White, Col: col, Row: 0})
		pieces = append(pieces, host.PieceInput{Kind: kind, Color: board.Black, Col: col, Row: 7})
	}
	for col := 0; col < 8; col++ {
		pieces = append(pieces, host.PieceInput{Kind: board.Pawn, Color: board.White, Col: col, Row: 1})
		pieces = append(pieces, host.PieceInput{Kind: board.Pawn, Color: board.Black, Col: col, Row: 6})
	}

	return pieces
}
