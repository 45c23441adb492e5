package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"ripplebox/internal/config"
)

// OutputManager writes run artifacts (frame stats CSV plus a config
// snapshot) into one output directory. A nil manager is a valid no-op so
// callers can leave output disabled.
type OutputManager struct {
	dir           string
	framesFile    *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and opens frames.csv.
// Returns nil when dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	return &OutputManager{dir: dir, framesFile: f}, nil
}

// WriteConfig snapshots the active configuration next to the CSV log.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrame appends one stats record to frames.csv. The header is
// emitted once, on the first record.
func (om *OutputManager) WriteFrame(stats FrameStats) error {
	if om == nil {
		return nil
	}
	records := []FrameStats{stats}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frames.csv: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.framesFile); err != nil {
		return fmt.Errorf("writing frames.csv: %w", err)
	}
	return nil
}

// Close flushes and closes the CSV file.
func (om *OutputManager) Close() error {
	if om == nil || om.framesFile == nil {
		return nil
	}
	return om.framesFile.Close()
}
