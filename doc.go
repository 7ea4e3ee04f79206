// Package memctx implements a block-chained bump allocator (memory arena)
// together with two containers built on its allocation contract: a growable
// Sequence of items and a NUL-terminated TextBuffer.
//
// # Overview
//
// An arena allocates memory in page-sized blocks and hands out portions of
// those blocks on demand. Nothing is freed individually: the whole arena is
// released as one unit, which makes cleanup O(1) and bookkeeping minimal.
// This suits workloads that build up a data structure, use it, and throw it
// all away together:
//
//   - Parsers and other scratch-heavy transformations
//   - Batch jobs with a clear end of life for all intermediate state
//   - Reducing garbage collection pressure from many small allocations
//
// # Basic Usage
//
//	ctx := memctx.NewArena(0) // default page size
//	defer ctx.Release()       // everything goes at once
//
//	// Raw bytes
//	buf := ctx.Alloc(1024)
//
//	// Typed values and slabs
//	ptr := memctx.Alloc[MyStruct](ctx)
//	slab := memctx.AllocSlice[int](ctx, 100)
//
//	// Containers on top of the arena
//	seq := memctx.NewSequence[string](ctx)
//	seq.Append("hello")
//
//	text := memctx.FromLiteral(ctx, "  hello  ")
//	trimmed := text.Trim() // non-owning view, "hello"
//
// # Block Chain
//
// The arena keeps an append-only chain of blocks (default page 4 KiB).
// Allocation is first-fit over the chain: a block that kept trailing slack
// from an earlier oversized request is reused before the tail block.
// Requests larger than one page get their own block, sized to the next page
// multiple. Block storage never moves, so returned references stay valid for
// the arena's whole lifetime.
//
// Files can be attached as individually detachable blocks: AttachFile reads
// a whole file into one fully-consumed block and returns a handle, and
// DetachFile drops just that block. This is the only partial free the arena
// supports. FromFile wraps the same bytes as a zero-copy TextBuffer.
//
// # Important Notes
//
//   - Not goroutine-safe: one logical owner per arena
//   - Allocated memory is only valid while the arena is live
//   - No individual deallocation - Release() drops everything in bulk
//   - Memory is not zeroed unless using Alloc[T]() or AllocSliceZeroed()
//   - All operations are total: nil or released inputs yield nil/zero
//     results, never a crash
//
// # Diagnostics
//
// The block chain can be inspected without touching it:
//
//	fmt.Println(ctx.BlockCount())
//	fmt.Println(ctx.Describe())       // one line per block
//	fmt.Println(ctx.Metrics())        // human-readable summary
package memctx
