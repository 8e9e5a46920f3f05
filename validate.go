package lzscan

import "encoding/binary"

// ValidationResult reports one validation attempt. Consumed and
// DecompressedSize are zero unless OK is true.
type ValidationResult struct {
	OK               bool // Decoding reached a clean terminator.
	Consumed         int  // Compressed block size, terminator included.
	DecompressedSize int  // Total decoded bytes.
}

// plausibleHeader is the cheap filter applied before paying for a full decode:
// both stream offsets inside [HeaderSize, remaining], pairs not before
// literals. The ordering constraint is stricter than Decompress requires; it
// is what keeps random data from masquerading as a header.
func plausibleHeader(litOff, pairOff, remaining int) bool {
	return litOff >= HeaderSize && litOff <= remaining &&
		pairOff >= HeaderSize && pairOff <= remaining &&
		pairOff >= litOff
}

// Validate asks whether decoding at offset runs to a clean terminator. It
// never returns an error: any malformed header, stream overrun, or flag
// stream that ends without a terminator yields OK=false. Decoded bytes are
// counted, not materialized.
func Validate(buf []byte, offset int) ValidationResult {
	// Subtraction form: offset+MinBlockSize could overflow for huge offsets.
	if offset < 0 || offset > len(buf)-MinBlockSize {
		return ValidationResult{}
	}

	data := buf[offset:]

	litOff := int(binary.LittleEndian.Uint32(data[0:4]))
	pairOff := int(binary.LittleEndian.Uint32(data[4:8]))

	if !plausibleHeader(litOff, pairOff, len(data)) {
		return ValidationResult{}
	}

	sink := &countingSink{}

	res, err := decodeBlock(data, litOff, pairOff, sink)
	if err != nil || !res.terminated {
		return ValidationResult{}
	}

	return ValidationResult{
		OK:               true,
		Consumed:         res.consumed,
		DecompressedSize: sink.n,
	}
}
