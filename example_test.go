package memctx

import (
	"fmt"

	"github.com/spf13/afero"
)

// Example demonstrates the arena with both containers on top of it.
func Example() {
	ctx := NewArena(0) // default page size
	defer ctx.Release()

	// Raw bytes straight from the arena
	buf := ctx.Alloc(1024)
	fmt.Printf("Allocated buffer of size: %d\n", len(buf))

	// A growable sequence backed by the same arena
	seq := NewSequence[int](ctx)
	seq.Append(1)
	seq.Append(2)
	seq.Append(3)
	second, _ := seq.ItemAt(1)
	fmt.Printf("Second item: %d\n", second)

	// A text buffer and a non-owning trimmed view
	text := FromLiteral(ctx, "  hello, arena  ")
	fmt.Printf("Trimmed: %q\n", text.Trim().String())

	fmt.Printf("Memory in use: %d bytes\n", ctx.SizeInUse())
	fmt.Printf("Blocks: %d\n", ctx.BlockCount())

	// Output:
	// Allocated buffer of size: 1024
	// Second item: 2
	// Trimmed: "hello, arena"
	// Memory in use: 1120 bytes
	// Blocks: 1
}

// ExampleArena_AttachFile shows the one partial free the arena supports:
// attaching a file as its own block and detaching it later.
func ExampleArena_AttachFile() {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "notes.txt", []byte("line one\nline two\n"), 0o644)

	ctx := NewArenaFS(0, fs)
	defer ctx.Release()

	fb, err := ctx.AttachFile("notes.txt")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("File size: %d\n", fb.Size())
	fmt.Printf("Blocks: %d\n", ctx.BlockCount())

	ctx.DetachFile(fb)
	fmt.Printf("Blocks after detach: %d\n", ctx.BlockCount())

	// Output:
	// File size: 18
	// Blocks: 2
	// Blocks after detach: 1
}

// ExampleSequence_RemoveWhere demonstrates stable compaction.
func ExampleSequence_RemoveWhere() {
	ctx := NewArena(0)
	defer ctx.Release()

	seq := NewSequence[int](ctx)
	for _, v := range []int{10, 20, 30, 20} {
		seq.Append(v)
	}

	seq.RemoveWhere(func(v int) bool { return v == 20 })
	seq.ForEach(func(v int) { fmt.Println(v) })
	fmt.Printf("Length: %d\n", seq.Len())

	// Output:
	// 10
	// 30
	// Length: 2
}

// ExampleTextBuffer_Append builds up a buffer piece by piece.
func ExampleTextBuffer_Append() {
	ctx := NewArena(0)
	defer ctx.Release()

	b := NewTextBuffer(ctx)
	b.Append("Hello")
	b.Append(", ")
	b.Append("World!")

	fmt.Println(b.String())
	fmt.Printf("Length: %d\n", b.Len())

	// Output:
	// Hello, World!
	// Length: 13
}

// ExampleArena_Metrics prints a human-readable usage summary.
func ExampleArena_Metrics() {
	ctx := NewArena(0)
	defer ctx.Release()

	fmt.Println(ctx.Metrics())

	// Output:
	// 0 B of 4.0 KiB in use (0.0%) across 1 blocks (page 4.0 KiB)
}
