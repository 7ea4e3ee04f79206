package memctx

// TextInitCapacity is the storage size of a freshly initialized TextBuffer,
// including room for the NUL terminator. TextGrowIncrement is the
// granularity buffers grow by when they run out of room.
const (
	TextInitCapacity  = 64
	TextGrowIncrement = 64
)

// TextBuffer is a growable byte buffer backed by arena storage. The storage
// is always NUL-terminated; the terminator is not part of the reported
// length. Appends mutate the buffer in place — growth may relocate the
// storage inside the arena, but that is never visible to callers.
//
// A TextBuffer dies with its arena; it is never released on its own. The one
// exception is a file-backed buffer, whose backing block can be dropped
// early with ReleaseFileBacking.
type TextBuffer struct {
	buf    []byte // arena storage; len(buf) is the capacity incl. terminator room
	length int    // bytes in use, excluding the terminator
	arena  *Arena
	file   *FileBlock // set when created by FromFile
}

// NewTextBuffer creates an empty buffer of TextInitCapacity backed by the
// arena. Returns nil if the arena is nil or released.
func NewTextBuffer(a *Arena) *TextBuffer {
	buf := a.Alloc(TextInitCapacity)
	if buf == nil {
		return nil
	}
	buf[0] = 0
	return &TextBuffer{buf: buf, arena: a}
}

// FromLiteral creates a buffer holding a copy of text. Capacity is
// TextInitCapacity, or the next TextGrowIncrement multiple that fits text
// plus its terminator. Empty text yields an empty buffer, not a failure.
func FromLiteral(a *Arena, text string) *TextBuffer {
	capacity := TextInitCapacity
	if need := len(text) + 1; need > capacity {
		capacity = roundUp(need, TextGrowIncrement)
	}
	buf := a.Alloc(capacity)
	if buf == nil {
		return nil
	}
	copy(buf, text)
	buf[len(text)] = 0
	return &TextBuffer{buf: buf, length: len(text), arena: a}
}

// FromFile reads the named file into the arena via AttachFile and wraps the
// file block's bytes directly: no copy, capacity is the file length plus the
// terminator. The buffer can drop its backing early with ReleaseFileBacking.
func FromFile(a *Arena, path string) (*TextBuffer, error) {
	fb, err := a.AttachFile(path)
	if err != nil {
		return nil, err
	}
	return &TextBuffer{buf: fb.terminated(), length: fb.Size(), arena: a, file: fb}, nil
}

// ReleaseFileBacking detaches and drops the file block behind a buffer
// created by FromFile, leaving the buffer empty. No-op for a buffer with no
// arena or no file backing.
func (b *TextBuffer) ReleaseFileBacking() {
	if b == nil || b.arena == nil || b.file == nil {
		return
	}
	b.arena.DetachFile(b.file)
	b.file = nil
	b.buf = nil
	b.length = 0
}

// Len returns the byte length, excluding the terminator.
func (b *TextBuffer) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Cap returns the allocated storage size, including terminator room.
func (b *TextBuffer) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.buf)
}

// Bytes returns the buffer's contents without the terminator. The slice
// aliases arena storage and is invalidated by the next growing Append.
func (b *TextBuffer) Bytes() []byte {
	if b == nil || b.buf == nil {
		return nil
	}
	return b.buf[:b.length:b.length]
}

// String returns a copy of the buffer's contents.
func (b *TextBuffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.buf[:b.length])
}

// Append adds text to the end of the buffer, growing the storage to the
// next TextGrowIncrement multiple when the combined length plus terminator
// exceeds the current capacity. Growth failure (released arena) leaves the
// buffer unchanged.
func (b *TextBuffer) Append(text string) {
	if b == nil || b.buf == nil || len(text) == 0 {
		return
	}
	need := b.length + len(text) + 1
	if need > len(b.buf) {
		buf := b.arena.Alloc(roundUp(need, TextGrowIncrement))
		if buf == nil {
			return
		}
		copy(buf, b.buf[:b.length])
		b.buf = buf
	}
	copy(b.buf[b.length:], text)
	b.length += len(text)
	b.buf[b.length] = 0
}

// AppendBuffer adds another buffer's contents to the end of this one.
func (b *TextBuffer) AppendBuffer(other *TextBuffer) {
	if other == nil || other.buf == nil {
		return
	}
	b.Append(string(other.buf[:other.length]))
}

// Trim returns a TextView over the buffer's bytes with leading and trailing
// ASCII whitespace excluded. An all-whitespace or empty buffer yields a
// zero-length view anchored at the original start. The view shares storage
// with the buffer and must never be released on its own.
func (b *TextBuffer) Trim() TextView {
	if b == nil || b.buf == nil {
		return TextView{}
	}
	return trimBytes(b.buf[:b.length])
}

// TextView is a non-owning window into a TextBuffer's bytes.
type TextView struct {
	b []byte
}

// Bytes returns the visible range. The slice aliases the underlying
// buffer's storage.
func (v TextView) Bytes() []byte {
	return v.b
}

// String returns a copy of the visible range.
func (v TextView) String() string {
	return string(v.b)
}

// Len returns the visible byte count.
func (v TextView) Len() int {
	return len(v.b)
}

// Trim narrows the view further; trimming an already-trimmed view returns
// it unchanged.
func (v TextView) Trim() TextView {
	return trimBytes(v.b)
}

func trimBytes(b []byte) TextView {
	start, end := 0, len(b)
	for start < end && isSpace(b[start]) {
		start++
	}
	if start == end {
		return TextView{b: b[:0]}
	}
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return TextView{b: b[start:end]}
}

// isSpace reports ASCII whitespace, matching C isspace in the C locale.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
