//go:build !wasm

package alloc

// Alignment is the byte boundary plane buffers are allocated on.
// 64 bytes matches the widest SIMD register and cache line size on
// general-purpose targets.
const Alignment uintptr = 1 << 6
