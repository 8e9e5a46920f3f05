package lzscan

import "encoding/binary"

// streamReader reads one of the three block streams (flags, literals, pairs)
// within a fixed [pos, limit) window of the block data. Every read is bounds
// checked against the limit; the scanner feeds these readers arbitrary bytes.
type streamReader struct {
	data  []byte // Block data, from the header onward.
	pos   int    // Current position in data.
	limit int    // Exclusive upper bound for this stream.
}

// remaining returns how many bytes are left before the stream limit.
func (r *streamReader) remaining() int {
	return r.limit - r.pos
}

// readByte reads one byte, reporting false at the stream limit.
func (r *streamReader) readByte() (byte, bool) {
	if r.pos >= r.limit {
		return 0, false
	}

	b := r.data[r.pos]
	r.pos++

	return b, true
}

// readUint16LE reads one little-endian pair code, reporting false when fewer
// than 2 bytes remain.
func (r *streamReader) readUint16LE() (uint16, bool) {
	if r.pos+pairCodeSize > r.limit {
		return 0, false
	}

	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += pairCodeSize

	return v, true
}

// readUint32BE reads one big-endian flag word, reporting false when fewer
// than 4 bytes remain.
func (r *streamReader) readUint32BE() (uint32, bool) {
	if r.pos+flagWordSize > r.limit {
		return 0, false
	}

	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += flagWordSize

	return v, true
}
