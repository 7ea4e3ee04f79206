package memctx

import (
	"unsafe"

	"github.com/spf13/afero"
)

// DefaultPageSize is the default backing block size for new arenas (4 KiB).
const DefaultPageSize = 4096

// MinCapacity and MaxCapacity document the allocation bounds of the original
// design. Block sizing is page-based (see Alloc); these are not enforced as a
// doubling growth policy.
const (
	MinCapacity = 4096
	MaxCapacity = 4 << 20
)

// Block is one contiguous backing buffer owned by an Arena. Its storage is
// never resized or moved while the arena is live, so references handed out
// from it stay valid until Release.
type Block struct {
	buf      []byte // backing memory
	consumed int    // bytes handed out from the front of buf
}

// Capacity returns the total usable bytes in the block.
func (b *Block) Capacity() int {
	if b == nil {
		return 0
	}
	return len(b.buf)
}

// Consumed returns the bytes already handed out from the block.
func (b *Block) Consumed() int {
	if b == nil {
		return 0
	}
	return b.consumed
}

// Free returns the bytes still available in the block.
func (b *Block) Free() int {
	if b == nil {
		return 0
	}
	return len(b.buf) - b.consumed
}

// Arena is a bump allocator over an append-only chain of blocks. It has a
// single logical owner and is not goroutine-safe. Memory handed out is never
// reclaimed individually; Release drops everything at once (file-backed
// blocks are the one exception, see AttachFile/DetachFile).
//
// The zero value and a released arena are inert: every operation on them
// returns a nil or zero sentinel.
type Arena struct {
	blocks   []*Block
	pageSize int
	fs       afero.Fs
}

// NewArena creates a new Arena with the specified page size and one empty
// initial block. If pageSize <= 0, DefaultPageSize is used.
func NewArena(pageSize int) *Arena {
	return NewArenaFS(pageSize, nil)
}

// NewArenaFS is NewArena with an explicit filesystem for AttachFile and
// FromFile. A nil fsys means the OS filesystem.
func NewArenaFS(pageSize int, fsys afero.Fs) *Arena {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	a := &Arena{pageSize: pageSize, fs: fsys}
	a.blocks = append(a.blocks, &Block{buf: make([]byte, pageSize)})
	return a
}

// Alloc returns a []byte of length size pointing into arena-owned storage.
// The reservation is rounded up to pointer alignment. Blocks are scanned in
// chain order and the first one with room services the request; a block that
// kept trailing slack from an earlier oversized request is reused before the
// tail block. When no block fits, a new block is appended: pageSize capacity,
// or the aligned size rounded up to the next pageSize multiple when larger.
//
// Returns nil if size <= 0 or the arena is nil or released. Returned memory
// is not zeroed. The caller must keep the arena reachable while the slice is
// in use.
func (a *Arena) Alloc(size int) []byte {
	if a == nil || a.blocks == nil || size <= 0 {
		return nil
	}
	n := alignUp(size)
	for _, b := range a.blocks {
		if len(b.buf)-b.consumed >= n {
			start := b.consumed
			b.consumed += n
			return unsafe.Slice((*byte)(unsafe.Pointer(&b.buf[start])), n)[:size]
		}
	}
	capacity := a.pageSize
	if n > capacity {
		capacity = roundUp(n, a.pageSize)
	}
	b := &Block{buf: make([]byte, capacity), consumed: n}
	a.blocks = append(a.blocks, b)
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.buf[0])), n)[:size]
}

// Release drops every block in the chain. All references previously returned
// by the arena become invalid; dereferencing them afterwards is the caller's
// bug, not detected at runtime. Safe on a nil or already-released arena.
func (a *Arena) Release() {
	if a == nil {
		return
	}
	a.blocks = nil
}

// alignUp rounds n up to pointer-size alignment.
func alignUp(n int) int {
	const align = int(unsafe.Sizeof(uintptr(0)))
	return (n + align - 1) &^ (align - 1)
}

// roundUp rounds n up to the next multiple of unit.
func roundUp(n, unit int) int {
	return (n + unit - 1) / unit * unit
}
