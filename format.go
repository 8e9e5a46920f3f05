package lzscan

// Block format constants.
const (
	HeaderSize    = 8    // Two little-endian uint32 stream offsets.
	MinBlockSize  = 12   // Header plus at least one flag word.
	WindowSize    = 4096 // Sliding dictionary size (ring buffer).
	MaxMatch      = 17   // Maximum back-reference length (nibble+2 -> 2..17).
	DefaultStride = 4    // Default scanner probe step; headers are 4-byte aligned in known containers.

	flagWordSize = 4 // Flag words are 32-bit, bits consumed MSB-first.
	pairCodeSize = 2 // Pair codes are 16-bit little-endian.
)
