// internal/storage/memory/export.go
package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kcolton/carball/pkg/core"
)

// HitLogExport is the root JSON structure consumed by the statistics
// pipeline.
type HitLogExport struct {
	ReplayName string      `json:"replayName"`
	BallShape  string      `json:"ballShape,omitempty"`
	FrameCount uint        `json:"frameCount"`
	Hits       []*core.Hit `json:"hits"`
}

// exportJSON writes the hit log to a JSON file, gzipped when configured.
// Returns the output path.
func (b *Backend) exportJSON() (string, error) {
	export := HitLogExport{
		ReplayName: b.match.Name,
		BallShape:  b.match.BallShape,
		FrameCount: b.match.FrameCount(),
		Hits:       make([]*core.Hit, 0, len(b.frames)),
	}
	// frames accumulate in creation order, which follows frame order
	for _, frame := range b.frames {
		export.Hits = append(export.Hits, b.hits[frame])
	}

	name := strings.ReplaceAll(b.match.Name, " ", "_")
	name = strings.ReplaceAll(name, ":", "_")
	if name == "" {
		name = "replay"
	}

	var filename string
	if b.cfg.CompressOutput {
		filename = fmt.Sprintf("%s_hits.json.gz", name)
	} else {
		filename = fmt.Sprintf("%s_hits.json", name)
	}
	outputPath := filepath.Join(b.cfg.OutputDir, filename)

	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if b.cfg.CompressOutput {
		if err := writeGzipJSON(outputPath, export); err != nil {
			return "", err
		}
	} else {
		if err := writeJSON(outputPath, export); err != nil {
			return "", err
		}
	}
	return outputPath, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeGzipJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	return json.NewEncoder(gz).Encode(v)
}
