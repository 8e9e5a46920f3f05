package lzscan

import "encoding/binary"

// blockUnit is one decode step used to assemble synthetic blocks in tests:
// either a literal byte or a pair code.
type blockUnit struct {
	literal bool
	b       byte
	code    uint16
}

func lit(b byte) blockUnit {
	return blockUnit{literal: true, b: b}
}

// pair builds a back-reference code: 12-bit dictionary index, length 2..17.
func pair(offset, length int) blockUnit {
	return blockUnit{code: uint16(offset)<<4 | uint16(length-2)}
}

// terminator is the zero-index pair code ending a block.
func terminator() blockUnit {
	return blockUnit{}
}

// buildBlock assembles one block from explicit units: header, big-endian flag
// words (literal=1, pair=0, MSB-first), literal bytes, little-endian pair
// codes. Units normally end with terminator(); leaving it off produces a
// block whose flag stream just runs out.
func buildBlock(units []blockUnit) []byte {
	words := (len(units) + 31) / 32
	flags := make([]uint32, words)

	var literals []byte
	var codes []uint16
	for i, u := range units {
		if u.literal {
			flags[i/32] |= 1 << (31 - i%32)
			literals = append(literals, u.b)
		} else {
			codes = append(codes, u.code)
		}
	}

	litOff := HeaderSize + words*flagWordSize
	pairOff := litOff + len(literals)

	block := make([]byte, 0, pairOff+len(codes)*pairCodeSize)
	block = binary.LittleEndian.AppendUint32(block, uint32(litOff))
	block = binary.LittleEndian.AppendUint32(block, uint32(pairOff))
	for _, w := range flags {
		block = binary.BigEndian.AppendUint32(block, w)
	}
	block = append(block, literals...)
	for _, c := range codes {
		block = binary.LittleEndian.AppendUint16(block, c)
	}

	return block
}

// literalBlock encodes payload as literals only, plus the terminator.
func literalBlock(payload []byte) []byte {
	units := make([]blockUnit, 0, len(payload)+1)
	for _, b := range payload {
		units = append(units, lit(b))
	}

	return buildBlock(append(units, terminator()))
}

// fillerContainer returns a buffer of 0xFF filler (0xFF header words always
// fail the plausibility check) with each block copied in at its offset.
func fillerContainer(size int, blocks map[int][]byte) []byte {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0xFF
	}
	for off, b := range blocks {
		copy(buf[off:], b)
	}

	return buf
}
