package receipts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/services/ledger"
)

// DownloadInvoices fetches the PDF of every invoice created inside the period
// and saves it into the account's output directory. Invoices without a PDF
// rendering yet (drafts) are logged and skipped; download failures are fatal.
func (g *Generator) DownloadInvoices(
	ctx context.Context,
	walker ledger.InvoiceWalker,
	account string,
	period domain.Period,
) ([]string, error) {
	dir, err := g.dir(account, period)
	if err != nil {
		return nil, err
	}

	var paths []string
	err = walker.WalkInvoices(ctx, period, func(inv domain.Invoice) error {
		if inv.PDFURL == "" {
			zerolog.Ctx(ctx).Warn().
				Str("invoice", inv.ID).
				Msg("invoice has no PDF rendering, skipping")
			return nil
		}
		name := inv.Number
		if name == "" {
			name = inv.ID
		}
		path := filepath.Join(dir, fmt.Sprintf("invoice-%s.pdf", name))
		if err := downloadFile(ctx, inv.PDFURL, path); err != nil {
			return fmt.Errorf("downloading invoice %s: %w", inv.ID, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func downloadFile(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
