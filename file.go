package memctx

import (
	"io"

	"github.com/pkg/errors"
)

// FileBlock is the handle returned by AttachFile. It identifies one
// file-backed block in the arena's chain and carries the exact byte length
// of the file, which is smaller than the block's page-rounded capacity.
type FileBlock struct {
	block *Block
	size  int
}

// Data returns the verbatim file bytes. The storage holds one extra NUL
// terminator byte past the returned length. Nil after DetachFile.
func (fb *FileBlock) Data() []byte {
	if fb == nil || fb.block == nil {
		return nil
	}
	return fb.block.buf[:fb.size]
}

// Size returns the exact byte length of the file, 0 after DetachFile.
func (fb *FileBlock) Size() int {
	if fb == nil || fb.block == nil {
		return 0
	}
	return fb.size
}

// terminated returns the file bytes plus the NUL terminator slot.
func (fb *FileBlock) terminated() []byte {
	if fb == nil || fb.block == nil {
		return nil
	}
	return fb.block.buf[: fb.size+1 : fb.size+1]
}

// AttachFile reads the named file whole and appends one new block holding
// its bytes plus a NUL terminator. The block's capacity is rounded up to the
// page size but it is created fully consumed, so ordinary allocations never
// land inside it and it can be detached later with DetachFile.
//
// On any failure (open error, empty file, short read, released arena) the
// chain is left unchanged and an error is returned.
func (a *Arena) AttachFile(path string) (*FileBlock, error) {
	if a == nil || a.blocks == nil {
		return nil, errors.New("memctx: attach on nil or released arena")
	}
	f, err := a.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "memctx: open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "memctx: stat %s", path)
	}
	size := info.Size()
	if size <= 0 {
		return nil, errors.Errorf("memctx: %s is empty", path)
	}

	capacity := roundUp(int(size)+1, a.pageSize)
	b := &Block{buf: make([]byte, capacity)}
	if _, err := io.ReadFull(f, b.buf[:size]); err != nil {
		return nil, errors.Wrapf(err, "memctx: read %s", path)
	}
	b.buf[size] = 0
	b.consumed = capacity
	a.blocks = append(a.blocks, b)
	return &FileBlock{block: b, size: int(size)}, nil
}

// DetachFile unlinks the handle's block from the chain and drops it. This is
// the only partial free the arena supports. No-op for a nil arena, a nil
// handle, or a handle whose block is no longer in the chain. Matching is by
// block identity, not content.
func (a *Arena) DetachFile(fb *FileBlock) {
	if a == nil || fb == nil || fb.block == nil {
		return
	}
	for i, b := range a.blocks {
		if b == fb.block {
			a.blocks = append(a.blocks[:i], a.blocks[i+1:]...)
			fb.block = nil
			return
		}
	}
}
