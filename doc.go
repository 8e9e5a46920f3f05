/*
Package lzscan recovers LZSS-compressed blocks embedded at unknown offsets
inside opaque binary containers, and decompresses them.

Block format: an 8-byte header of two little-endian uint32 stream offsets
(literals, pairs), both relative to block start. Flag words (32-bit,
big-endian, bits consumed MSB-first) run from byte 8 up to the literals
offset; bit 1 = literal (1 byte from the literal stream), bit 0 = pair
(16-bit little-endian code from the pair stream). A pair code packs a
12-bit dictionary index (high bits) and a 4-bit length nibble
(length = nibble+2 -> 2..17). Index 0 is the block terminator.
Sliding dictionary: 4096-byte ring, zero-filled, write cursor starts at 1
so index 0 stays a zero sentinel.

Containers carry no table of contents: the scanner probes candidate
offsets, validates each by fully decoding to a terminator, then resolves
overlapping candidates into a sorted, non-overlapping block list.

Use Scan(buf, opts) to find blocks; nil opts means DefaultScanOptions
(4-byte probe stride, sequential). Use Decompress(block) on an exact
block range. Use Validate(buf, offset) to probe a single offset without
ever getting an error. Use Extract(buf, blocks, dir) to decompress and
persist every scanned block.

# Examples

Scan a container and extract all blocks:

	blocks := lzscan.Scan(data, nil)
	stats := lzscan.Extract(data, blocks, outDir)
	_ = stats

Scan at byte granularity (higher recall, slower) with 8 workers:

	opts := &lzscan.ScanOptions{Stride: 1, Workers: 8}
	blocks := lzscan.Scan(data, opts)

Decompress one known block range:

	raw := data[b.Offset : b.Offset+b.Consumed]
	out, err := lzscan.Decompress(raw)
	if err != nil {
		return err
	}
*/
package lzscan
