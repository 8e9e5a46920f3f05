package lzscan

import (
	"encoding/binary"
	"fmt"

	"github.com/woozymasta/lzscan/logger"
)

// outputSink receives decoded bytes. Decompress materializes them; Validate
// only counts them, so the scanner never allocates payload memory while probing.
type outputSink interface {
	emit(b byte)
}

// byteSink appends decoded bytes to a buffer.
type byteSink struct {
	buf []byte
}

func (s *byteSink) emit(b byte) {
	s.buf = append(s.buf, b)
}

// countingSink counts decoded bytes without storing them.
type countingSink struct {
	n int
}

func (s *countingSink) emit(byte) {
	s.n++
}

// decodeResult reports how the state machine stopped.
type decodeResult struct {
	terminated bool // Terminator pair code reached.
	consumed   int  // Bytes consumed from block start, ending right after the terminator.
	flagsLeft  int  // Flag stream bytes left unconsumed when it ended without a terminator.
}

// decodeBlock runs the flag/literal/pair state machine over data, which must
// start at the block header; the caller has already bounds-checked litOff and
// pairOff against len(data). It stops cleanly at a terminator pair or at the
// end of the flag stream, and returns ErrLiteralOverrun or ErrPairOverrun when
// a stream runs dry before either happens.
func decodeBlock(data []byte, litOff, pairOff int, sink outputSink) (decodeResult, error) {
	flags := streamReader{data: data, pos: HeaderSize, limit: litOff}
	literals := streamReader{data: data, pos: litOff, limit: pairOff}
	pairs := streamReader{data: data, pos: pairOff, limit: len(data)}

	dict := newWindow()

	var flagWord uint32
	var mask uint32 // Starts at 0 so the first iteration loads a flag word.

	for {
		if mask == 0 {
			word, ok := flags.readUint32BE()
			if !ok {
				// Normal end of the flag stream. Leftover bytes short of a
				// full word are an anomaly the caller may surface.
				return decodeResult{flagsLeft: flags.remaining()}, nil
			}

			flagWord = word
			mask = 1 << 31
		}

		isLiteral := flagWord&mask != 0
		mask >>= 1

		if isLiteral {
			b, ok := literals.readByte()
			if !ok {
				return decodeResult{}, ErrLiteralOverrun
			}

			sink.emit(b)
			dict.push(b)

			continue
		}

		code, ok := pairs.readUint16LE()
		if !ok {
			return decodeResult{}, ErrPairOverrun
		}

		offset := int(code >> 4)
		if offset == 0 {
			return decodeResult{terminated: true, consumed: pairs.pos}, nil
		}

		length := int(code&0xF) + 2
		// Copy byte-by-byte: the dictionary cursor may run into the copied
		// region (offset < length), and each written byte must be visible to
		// the next read for the RLE-like expansion to come out right.
		for i := 0; i < length; i++ {
			b := dict.at(offset + i)
			sink.emit(b)
			dict.push(b)
		}
	}
}

// Decompress decompresses one block. The input must be the exact byte range of
// a single block, header first. It fails on a malformed header or on a stream
// overrun; a flag stream that ends before the literals offset is tolerated and
// only logged, the bytes produced so far are returned.
func Decompress(block []byte) ([]byte, error) {
	if len(block) < MinBlockSize {
		return nil, fmt.Errorf("%w: size=%d", ErrBlockTooSmall, len(block))
	}

	litOff := int(binary.LittleEndian.Uint32(block[0:4]))
	pairOff := int(binary.LittleEndian.Uint32(block[4:8]))

	if litOff >= len(block) || pairOff >= len(block) || litOff < HeaderSize {
		return nil, fmt.Errorf("%w: literals=%d pairs=%d size=%d", ErrInvalidHeader, litOff, pairOff, len(block))
	}

	sink := &byteSink{buf: make([]byte, 0, len(block)*4)}

	res, err := decodeBlock(block, litOff, pairOff, sink)
	if err != nil {
		return nil, err
	}

	if !res.terminated && res.flagsLeft > 0 {
		log := logger.Logger()
		log.Warn().
			Int("unconsumed", res.flagsLeft).
			Msg("flag stream ended short of the literal region")
	}

	return sink.buf, nil
}
