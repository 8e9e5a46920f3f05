// Command lzscan scans container files for embedded LZSS blocks and extracts
// every block it finds into an output directory.
//
// Usage:
//
//	lzscan -d <container> <output-dir>   scan one file into a chosen directory
//	lzscan <container> [...]             extract each file next to itself
//	lzscan                               prompt for a path interactively
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/lzscan"
	"github.com/woozymasta/lzscan/logger"
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 3 && args[0] == "-d":
		if err := processFile(args[1], args[2]); err != nil {
			os.Exit(1)
		}

	case len(args) > 0:
		// Drag-and-drop mode: each container extracts to a sibling directory.
		failed := false
		for _, in := range args {
			if err := processFile(in, defaultOutDir(in)); err != nil {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}

	default:
		if err := interactive(); err != nil {
			os.Exit(1)
		}
	}
}

// defaultOutDir returns "<container>_decompressed" next to the input file.
func defaultOutDir(inPath string) string {
	return filepath.Join(filepath.Dir(inPath), filepath.Base(inPath)+"_decompressed")
}

// interactive prints usage and prompts for a single container path. Quotes
// around the path (shell drag-and-drop leaves them in) are stripped.
func interactive() error {
	fmt.Println("lzscan: recover LZSS blocks embedded in binary containers")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  lzscan -d <container> <output-dir>")
	fmt.Println("  lzscan <container> [...]")
	fmt.Println()
	fmt.Print("Container path: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return err
	}

	path := strings.TrimSpace(line)
	if len(path) >= 2 && strings.HasPrefix(path, `"`) && strings.HasSuffix(path, `"`) {
		path = path[1 : len(path)-1]
	}

	if path == "" {
		fmt.Println("nothing to process")
		return nil
	}

	return processFile(path, defaultOutDir(path))
}

// processFile reads one container, scans it and extracts every block found.
func processFile(inPath, outDir string) error {
	log := logger.Logger()
	log.Info().Str("file", inPath).Str("out", outDir).Msg("processing container")

	data, err := os.ReadFile(inPath)
	if err != nil {
		log.Error().Err(err).Str("file", inPath).Msg("cannot read container")
		return err
	}
	if len(data) == 0 {
		log.Error().Str("file", inPath).Msg("container is empty")
		return fmt.Errorf("container is empty: %s", inPath)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", outDir).Msg("cannot create output directory")
		return err
	}

	blocks := lzscan.Scan(data, nil)
	if len(blocks) == 0 {
		log.Info().Str("file", inPath).Msg("no blocks found")
		return nil
	}
	log.Info().Int("blocks", len(blocks)).Msg("scan complete")

	stats := lzscan.Extract(data, blocks, outDir)
	log.Info().Int("extracted", stats.Extracted).Int("failed", stats.Failed).Msg("extraction complete")

	return nil
}
