// Package cache implements the transposition cache used to memoize search results keyed
// by board state, active color and remaining search depth.
package cache

import (
	"github.com/tzubiri/chesscore/pkg/board"
)

// fnvOffsetBasis is the 64-bit FNV offset basis, used here only as a well-distributed
// starting accumulator for the mixing hash below.
const fnvOffsetBasis uint64 = 1469598103934665603

// mix folds value into hash using a Boost-style hash_combine step.
func mix(hash, value uint64) uint64 {
	hash ^= value + 0x9e3779b97f4a7c15 + (hash << 6) + (hash >> 2)
	return hash
}

// Hash computes the cache key for a position from the perspective of active color with
// remaining plies of search left. Every board square is mixed in order (0 for empty,
// otherwise a +1-biased packing of kind/color/moved/col/row), followed by the en-passant
// coordinates (+1 biased), the halfmove clock, the active color and the remaining plies.
// Two positions differing only in remaining plies hash differently: entries are
// depth-specific, never promoted across depths.
func Hash(pos *board.Position, active board.Color, remainingPlies int) uint64 {
	h := fnvOffsetBasis

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			idx, ok := pos.At(board.Square{Col: col, Row: row})
			if !ok || !pos.Pieces[idx].Alive {
				h = mix(h, 0)
				continue
			}

			pc := pos.Pieces[idx]
			moved := uint64(0)
			if pc.Moved {
				moved = 1
			}
			bits := uint64(pc.Kind) |
				uint64(pc.Color)<<3 |
				moved<<4 |
				uint64(col)<<8 |
				uint64(row)<<16
			h = mix(h, bits+1)
		}
	}

	ep := pos.EnPassant
	epBits := uint64(biasedCoord(ep.Target.Col)) |
		uint64(biasedCoord(ep.Target.Row))<<4 |
		uint64(biasedCoord(ep.Capture.Col))<<8 |
		uint64(biasedCoord(ep.Capture.Row))<<12
	h = mix(h, epBits)
	h = mix(h, uint64(pos.HalfMoves))
	h = mix(h, uint64(active))
	h = mix(h, uint64(remainingPlies))

	return h
}

// biasedCoord shifts a coordinate by +1 so that an absent en-passant window (coordinate -1)
// mixes in as 0, distinct from any occupied coordinate's bias-adjusted range starting at 1.
func biasedCoord(v int) int {
	return v + 1
}
