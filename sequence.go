package memctx

// SequenceInitCapacity is the slot count of a freshly initialized Sequence.
const SequenceInitCapacity = 4

// Sequence is a growable, indexable list backed entirely by arena storage.
// It never frees: growth allocates a doubled slab from the arena and
// abandons the old one in place until the arena is released.
//
// All operations on a nil Sequence or with nil callbacks are no-ops or
// return a defined sentinel.
type Sequence[T any] struct {
	items  []T // arena slab; len(items) is the slot capacity
	length int // slots in use
	arena  *Arena
}

// NewSequence creates an empty Sequence with SequenceInitCapacity slots
// allocated from the arena. Returns nil if the arena is nil or released.
func NewSequence[T any](a *Arena) *Sequence[T] {
	items := AllocSlice[T](a, SequenceInitCapacity)
	if items == nil {
		return nil
	}
	return &Sequence[T]{items: items, arena: a}
}

// Len returns the number of items in use (0 for a nil sequence).
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Cap returns the number of allocated slots (0 for a nil sequence).
func (s *Sequence[T]) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// grow doubles the backing slab. The old slab stays allocated in the arena
// but unreferenced. Reports whether the new slab could be allocated.
func (s *Sequence[T]) grow() bool {
	items := AllocSlice[T](s.arena, len(s.items)*2)
	if items == nil {
		return false
	}
	copy(items, s.items[:s.length])
	s.items = items
	return true
}

// Append places item after the last one in use and returns the new length.
// If growth is needed and fails, the sequence is unchanged and the old
// length is returned.
func (s *Sequence[T]) Append(item T) int {
	if s == nil {
		return 0
	}
	if s.length == len(s.items) && !s.grow() {
		return s.length
	}
	s.items[s.length] = item
	s.length++
	return s.length
}

// InsertAt writes item at index, shifting later items one slot toward the
// tail. An index at or past the current length behaves as Append.
func (s *Sequence[T]) InsertAt(item T, index int) {
	if s == nil || index < 0 {
		return
	}
	if index >= s.length {
		s.Append(item)
		return
	}
	if s.length == len(s.items) && !s.grow() {
		return
	}
	copy(s.items[index+1:s.length+1], s.items[index:s.length])
	s.items[index] = item
	s.length++
}

// RemoveAt drops the item at index with a stable left shift. No-op when the
// index is out of range. The removed item's storage belongs to the arena and
// is not reclaimed.
func (s *Sequence[T]) RemoveAt(index int) {
	if s == nil || index < 0 || index >= s.length {
		return
	}
	copy(s.items[index:], s.items[index+1:s.length])
	s.length--
}

// ItemAt returns the item at index, or the zero value and false when out of
// range.
func (s *Sequence[T]) ItemAt(index int) (T, bool) {
	var zero T
	if s == nil || index < 0 || index >= s.length {
		return zero, false
	}
	return s.items[index], true
}

// Clear resets the length to zero, keeping capacity and backing storage.
func (s *Sequence[T]) Clear() {
	if s == nil {
		return
	}
	s.length = 0
}

// FirstIndex returns the index of the first item for which pred holds, or
// -1 when there is none or an input is nil.
func (s *Sequence[T]) FirstIndex(pred func(T) bool) int {
	if s == nil || pred == nil {
		return -1
	}
	for i := 0; i < s.length; i++ {
		if pred(s.items[i]) {
			return i
		}
	}
	return -1
}

// Match applies action to every item for which pred holds, in index order.
func (s *Sequence[T]) Match(pred func(T) bool, action func(T)) {
	if s == nil || pred == nil || action == nil {
		return
	}
	for i := 0; i < s.length; i++ {
		if pred(s.items[i]) {
			action(s.items[i])
		}
	}
}

// ForEach applies action to every item, in index order.
func (s *Sequence[T]) ForEach(action func(T)) {
	if s == nil || action == nil {
		return
	}
	for i := 0; i < s.length; i++ {
		action(s.items[i])
	}
}

// RemoveWhere drops every item for which pred holds, keeping the rest in
// their original order (stable single-pass compaction).
func (s *Sequence[T]) RemoveWhere(pred func(T) bool) {
	if s == nil || pred == nil {
		return
	}
	w := 0
	for i := 0; i < s.length; i++ {
		if !pred(s.items[i]) {
			s.items[w] = s.items[i]
			w++
		}
	}
	s.length = w
}
