package eval

import (
	"github.com/seekerror/stdlib/pkg/lang"
)

// SquareMultipliers holds the seven position-multiplier indices: center, center-cross,
// center-diagonal, corner (non-rook), corner (rook), corner-touch (non-rook), corner-touch
// (rook).
type SquareMultipliers [7]float64

// PawnRankValues holds the nine pawn-rank advancement values, indexed by rank 1-8; index 0
// is unused since no pawn ever occupies rank 0.
type PawnRankValues [9]float64

// Options are the tunable evaluation weights. Each optional weight carries an explicit
// present/absent variant via lang.Optional, rather than a sentinel magic number.
type Options struct {
	// PieceValues is indexed by Piece ordinal (Pawn..King), 6 entries.
	PieceValues [6]float64

	PawnRankValues    lang.Optional[PawnRankValues]
	BackwardPawnValue lang.Optional[float64]
	SquareMultipliers lang.Optional[SquareMultipliers]

	// ControlWeight multiplies the mobility/control term; zero disables it.
	ControlWeight float64

	OppositeBishopDrawFactor lang.Optional[float64]
}
