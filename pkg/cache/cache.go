package cache

import (
	"context"
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/seekerror/logw"

	"github.com/tzubiri/chesscore/pkg/board"
	"github.com/tzubiri/chesscore/pkg/eval"
)

// entry is one cache bucket. There is no collision chain: a store unconditionally
// overwrites whatever previously occupied the bucket.
type entry struct {
	key            uint64
	activeColor    board.Color
	remainingPlies int
	score          eval.Score
	valid          bool
}

// Cache is an open-addressed transposition table with one entry per bucket. A lookup hits
// only when key, active color and remaining plies all match the stored entry exactly:
// entries are depth-specific, never promoted or reused across a different search depth.
//
// A Cache is not safe for concurrent use: a search owns a cache exclusively for the
// duration of the call. Multiple sequential searches may reuse one, since stale entries
// from a prior position remain valid as long as their exact key still matches.
type Cache struct {
	entries []entry
	mask    uint64
	used    int
}

// New allocates a Cache sized to the largest power of two that fits within maxBytes.
// Returns nil if even the smallest useful capacity (2 entries) does not fit -- callers
// must accept a nil Cache everywhere a cache is accepted.
func New(ctx context.Context, maxBytes uint64) *Cache {
	sizeofEntry := uint64(unsafe.Sizeof(entry{})) // 48 on 64-bit: key, activeColor and valid each padded to 8, remainingPlies(8), score(16)
	if maxBytes < sizeofEntry*2 {
		return nil
	}

	capacity := maxBytes / sizeofEntry
	pow2 := uint64(1) << (63 - bits.LeadingZeros64(capacity))

	// make never returns a partial allocation the way calloc can fail and be retried at
	// half size; it either succeeds outright or panics. The power-of-two sizing itself is
	// still load-bearing for the mask-based bucket index below.
	logw.Infof(ctx, "Allocating %vB transposition cache with %v entries", pow2*sizeofEntry, pow2)
	return &Cache{entries: make([]entry, pow2), mask: pow2 - 1}
}

// Lookup returns the cached score for (hash, active, remainingPlies), if present.
func (c *Cache) Lookup(hash uint64, active board.Color, remainingPlies int) (eval.Score, bool) {
	if c == nil {
		return eval.Score{}, false
	}

	e := &c.entries[hash&c.mask]
	if !e.valid || e.key != hash || e.activeColor != active || e.remainingPlies != remainingPlies {
		return eval.Score{}, false
	}
	return e.score, true
}

// Store writes score into the bucket for hash, unconditionally evicting any prior occupant.
func (c *Cache) Store(hash uint64, active board.Color, remainingPlies int, score eval.Score) {
	if c == nil {
		return
	}

	e := &c.entries[hash&c.mask]
	if !e.valid {
		c.used++
	}
	e.key = hash
	e.activeColor = active
	e.remainingPlies = remainingPlies
	e.score = score
	e.valid = true
}

// Size returns the cache's entry capacity.
func (c *Cache) Size() uint64 {
	if c == nil {
		return 0
	}
	return uint64(len(c.entries))
}

// Used returns the fraction of buckets currently holding a valid entry, in [0;1].
func (c *Cache) Used() float64 {
	if c == nil || len(c.entries) == 0 {
		return 0
	}
	return float64(c.used) / float64(len(c.entries))
}

func (c *Cache) String() string {
	if c == nil {
		return "Cache[nil]"
	}
	return fmt.Sprintf("Cache[%v @ %v%%]", c.Size(), int(100*c.Used()))
}
