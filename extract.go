package lzscan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/woozymasta/lzscan/logger"
)

// ExtractStats tallies one extraction run.
type ExtractStats struct {
	Extracted int // Blocks decompressed and written.
	Failed    int // Blocks that failed to decode or persist.
}

// ChunkFileName returns the artifact name for one extracted block:
// chunk_off_<offset hex, 8 digits>_dec_<decompressed size>.bin.
func ChunkFileName(offset, decompressedSize int) string {
	return fmt.Sprintf("chunk_off_%08x_dec_%d.bin", offset, decompressedSize)
}

// Extract decompresses every scanned block and writes each payload to dir,
// which must already exist. Each block range is re-decoded with Decompress;
// the redundant pass keeps discovery and materialization separate. A decode
// or write failure is counted and logged, never stops the remaining blocks.
func Extract(buf []byte, blocks []ScanResult, dir string) ExtractStats {
	log := logger.Logger()

	var stats ExtractStats
	for _, b := range blocks {
		raw := buf[b.Offset : b.Offset+b.Consumed]

		out, err := Decompress(raw)
		if err != nil {
			log.Error().Err(err).
				Str("offset", fmt.Sprintf("0x%x", b.Offset)).
				Msg("block failed to decode")
			stats.Failed++

			continue
		}

		// The validator already decoded this block once; disagreement means
		// the two passes diverged, worth a warning but the artifact is kept.
		if len(out) != b.DecompressedSize {
			log.Warn().
				Str("offset", fmt.Sprintf("0x%x", b.Offset)).
				Int("scanned", b.DecompressedSize).
				Int("decoded", len(out)).
				Msg("decompressed size mismatch between scan and extraction")
		}

		name := ChunkFileName(b.Offset, len(out))
		if err := os.WriteFile(filepath.Join(dir, name), out, 0o644); err != nil {
			log.Error().Err(err).Str("file", name).Msg("block failed to persist")
			stats.Failed++

			continue
		}

		log.Debug().
			Str("offset", fmt.Sprintf("0x%x", b.Offset)).
			Int("consumed", b.Consumed).
			Int("size", len(out)).
			Str("file", name).
			Msg("block extracted")
		stats.Extracted++
	}

	return stats
}
