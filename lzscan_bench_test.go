package lzscan

import (
	"bytes"
	"fmt"
	"testing"
)

// benchContainer embeds a handful of blocks in 64 KiB of filler.
func benchContainer() []byte {
	payload := bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 8)
	blocks := map[int][]byte{}
	for i := 0; i < 4; i++ {
		blocks[4096+i*8192] = literalBlock(payload)
	}

	return fillerContainer(64*1024, blocks)
}

func BenchmarkScan(b *testing.B) {
	container := benchContainer()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Scan(container, nil)
	}
}

func BenchmarkScanWorkers(b *testing.B) {
	container := benchContainer()
	for _, workers := range []int{1, 2, 4, 8} {
		opts := &ScanOptions{Stride: DefaultStride, Workers: workers}
		b.Run(fmt.Sprintf("Workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Scan(container, opts)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	payload := bytes.Repeat([]byte("abcdefgh"), 64)
	block := literalBlock(payload)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress(block)
	}
}

func BenchmarkValidate(b *testing.B) {
	payload := bytes.Repeat([]byte("abcdefgh"), 64)
	block := literalBlock(payload)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Validate(block, 0)
	}
}
