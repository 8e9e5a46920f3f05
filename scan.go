package lzscan

import (
	"encoding/binary"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/lzscan/logger"
)

// ScanResult describes one accepted block inside a container.
type ScanResult struct {
	Offset           int // Block start within the container.
	Consumed         int // Compressed block size, terminator included.
	DecompressedSize int // Decoded payload size.
}

// Scan finds every block embedded in buf. Options nil means
// DefaultScanOptions (4-byte stride, sequential).
//
// Candidate offsets are probed at the configured stride, filtered by the
// cheap header check, then fully validated. Surviving candidates are sorted
// by ascending offset (larger block wins a same-offset tie) and swept
// greedily so no two kept ranges overlap. An empty result is a valid outcome
// for a container with no blocks.
func Scan(buf []byte, opts *ScanOptions) []ScanResult {
	if opts == nil {
		opts = DefaultScanOptions()
	}

	stride := opts.Stride
	if stride < 1 {
		stride = DefaultStride
	}

	if len(buf) < MinBlockSize {
		return nil
	}

	log := logger.Logger()
	log.Debug().Int("bytes", len(buf)).Int("stride", stride).Msg("scanning container")

	last := len(buf) - MinBlockSize

	var candidates []ScanResult
	if opts.Workers > 1 {
		candidates = scanParallel(buf, last, stride, opts.Workers)
	} else {
		candidates = scanRange(buf, 0, last, stride)
	}

	log.Debug().Int("candidates", len(candidates)).Msg("candidate discovery done")

	blocks := dedupe(candidates)

	log.Debug().Int("blocks", len(blocks)).Msg("scan done")

	return blocks
}

// scanRange probes offsets lo..hi inclusive, stepping by stride. lo must be a
// multiple of stride for sharded calls to line up with the sequential scan.
func scanRange(buf []byte, lo, hi, stride int) []ScanResult {
	var results []ScanResult

	for off := lo; off <= hi; off += stride {
		litOff := int(binary.LittleEndian.Uint32(buf[off:]))
		pairOff := int(binary.LittleEndian.Uint32(buf[off+4:]))

		if !plausibleHeader(litOff, pairOff, len(buf)-off) {
			continue
		}

		res := Validate(buf, off)
		if res.OK && res.Consumed > 0 {
			results = append(results, ScanResult{
				Offset:           off,
				Consumed:         res.Consumed,
				DecompressedSize: res.DecompressedSize,
			})
		}
	}

	return results
}

// scanParallel shards the probe space into contiguous, stride-aligned chunks,
// one per worker. Per-offset probes are independent, so concatenating the
// per-worker slices in worker order reproduces the sequential candidate list.
func scanParallel(buf []byte, last, stride, workers int) []ScanResult {
	probes := last/stride + 1
	if workers > probes {
		workers = probes
	}

	parts := make([][]ScanResult, workers)
	per := (probes + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		first := w * per
		count := per
		if first+count > probes {
			count = probes - first
		}
		if count <= 0 {
			continue
		}

		g.Go(func() error {
			parts[w] = scanRange(buf, first*stride, (first+count-1)*stride, stride)
			return nil
		})
	}
	_ = g.Wait() // Workers never fail; an offset that does not validate is simply skipped.

	var results []ScanResult
	for _, p := range parts {
		results = append(results, p...)
	}

	return results
}

// dedupe resolves overlapping candidates: sort by ascending offset, larger
// Consumed first on ties, then keep each candidate only if its range does not
// intersect an already-kept one. Rejected candidates are dropped whole. The
// greedy sweep does not maximize total coverage; earliest offset winning is
// the compatible behavior.
func dedupe(candidates []ScanResult) []ScanResult {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Offset != candidates[j].Offset {
			return candidates[i].Offset < candidates[j].Offset
		}

		return candidates[i].Consumed > candidates[j].Consumed
	})

	var kept []ScanResult
	lastEnd := 0 // Kept ranges start in ascending order, so their ends ascend too.

	for _, c := range candidates {
		if len(kept) > 0 && c.Offset < lastEnd {
			continue
		}

		kept = append(kept, c)
		lastEnd = c.Offset + c.Consumed
	}

	return kept
}
