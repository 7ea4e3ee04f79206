package memctx

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// BlockCount returns the number of blocks in the chain (0 for a nil or
// released arena).
func (a *Arena) BlockCount() int {
	if a == nil {
		return 0
	}
	return len(a.blocks)
}

// BlockAt returns the block at the given zero-based chain position. Negative
// indices count from the tail (-1 is the last block). Returns nil when the
// index is out of range or the arena is nil or released.
func (a *Arena) BlockAt(index int) *Block {
	if a == nil {
		return nil
	}
	if index < 0 {
		index += len(a.blocks)
	}
	if index < 0 || index >= len(a.blocks) {
		return nil
	}
	return a.blocks[index]
}

// Describe renders the block chain as text, one line per block in chain
// order:
//
//	<block>: capacity: <N> consumed: <N> data: <ptr> next: <ptr|none>
//
// Returns the empty string for a nil or released arena.
func (a *Arena) Describe() string {
	if a == nil || a.blocks == nil {
		return ""
	}
	var sb strings.Builder
	for i, b := range a.blocks {
		next := "none"
		if i+1 < len(a.blocks) {
			next = fmt.Sprintf("%p", a.blocks[i+1])
		}
		fmt.Fprintf(&sb, "%p: capacity: %d consumed: %d data: %p next: %s\n",
			b, len(b.buf), b.consumed, &b.buf[0], next)
	}
	return sb.String()
}

// SizeInUse returns the total number of bytes currently allocated in the
// arena. This includes internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	if a == nil {
		return 0
	}
	sum := 0
	for _, b := range a.blocks {
		sum += b.consumed
	}
	return sum
}

// Capacity returns the total capacity (in bytes) of all blocks in the arena.
func (a *Arena) Capacity() int {
	if a == nil {
		return 0
	}
	sum := 0
	for _, b := range a.blocks {
		sum += len(b.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to
// 1.0). Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// PageSize returns the block page size used by this arena.
func (a *Arena) PageSize() int {
	if a == nil {
		return 0
	}
	return a.pageSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		BlockCount:  a.BlockCount(),
		PageSize:    a.PageSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	BlockCount  int     // Number of blocks in the chain
	PageSize    int     // Block page size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// String renders the snapshot in human-readable units.
func (m ArenaMetrics) String() string {
	return fmt.Sprintf("%s of %s in use (%.1f%%) across %d blocks (page %s)",
		humanize.IBytes(uint64(m.SizeInUse)),
		humanize.IBytes(uint64(m.Capacity)),
		m.Utilization*100,
		m.BlockCount,
		humanize.IBytes(uint64(m.PageSize)))
}
