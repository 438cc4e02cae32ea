package receipts

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/services/money"
)

// SavePayoutReceipts renders one PDF per classified payout. Amounts on a
// payout receipt are shown sign-flipped, matching how the statement reports
// them.
func (g *Generator) SavePayoutReceipts(ctx context.Context, st *domain.Statement) ([]string, error) {
	dir, err := g.dir(st.Account, st.Period)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(st.Payouts))
	for _, po := range st.Payouts {
		name := po.SourceID
		if name == "" {
			name = po.TransactionID
		}
		path := filepath.Join(dir, fmt.Sprintf("payout-%s.pdf", name))
		if err := writePayoutReceipt(path, st.Account, po); err != nil {
			return nil, fmt.Errorf("writing receipt for payout %s: %w", po.TransactionID, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePayoutReceipt(path, account string, po domain.Payout) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payout %s", po.SourceID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Payout Receipt", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeRow(pdf, "Account", account)
	writeRow(pdf, "Payout", po.SourceID)
	writeRow(pdf, "Transaction", po.TransactionID)
	writeRow(pdf, "Initiated", po.Created.Format("2006-01-02 15:04"))
	if !po.ArrivalDate.IsZero() {
		writeRow(pdf, "Bank arrival", po.ArrivalDate.Format("2006-01-02"))
	}
	writeRow(pdf, "Amount", money.Format(-po.Amount, po.Currency))
	writeRow(pdf, "Fee", money.Format(po.Fee, po.Currency))

	return pdf.OutputFileAndClose(path)
}
