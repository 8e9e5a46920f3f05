package lzscan

// window is the sliding dictionary: a zero-filled ring buffer holding every
// byte the decoder has produced. Pair codes address it by absolute index.
type window struct {
	buf [WindowSize]byte
	pos int
}

// newWindow returns a dictionary with the write cursor at 1. Index 0 is never
// written: a pair code addressing it is the block terminator, not a back-reference.
func newWindow() window {
	return window{pos: 1}
}

// push writes b at the cursor and advances it modulo WindowSize.
func (w *window) push(b byte) {
	w.buf[w.pos] = b
	w.pos = (w.pos + 1) & (WindowSize - 1)
}

// at reads the byte at index i modulo WindowSize.
func (w *window) at(i int) byte {
	return w.buf[i&(WindowSize-1)]
}
