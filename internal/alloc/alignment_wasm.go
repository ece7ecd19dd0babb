//go:build wasm

package alloc

// Alignment is the byte boundary plane buffers are allocated on.
// WASM has no wide SIMD registers worth aligning for, so a smaller
// boundary keeps the allocation slack down on memory-constrained
// targets.
const Alignment uintptr = 1 << 3
