package receipts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
)

// Config is the static configuration shared by all document actions.
type Config struct {
	// OutputDir is the root under which per-account, per-month directories
	// are created.
	OutputDir string
}

// Generator writes receipt and invoice documents to disk. It renders from
// already-classified data; it performs no classification of its own.
type Generator struct {
	cfg Config
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// dir ensures and returns the output directory for one account and period,
// e.g. <output>/acme/2026-08.
func (g *Generator) dir(account string, period domain.Period) (string, error) {
	path := filepath.Join(g.cfg.OutputDir, account, period.Start.Format("2006-01"))
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", path, err)
	}
	return path, nil
}
