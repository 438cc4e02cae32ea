package receipts

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/services/money"
)

// SaveChargeReceipts renders one PDF receipt per classified charge and
// returns the written file paths. Any file or rendering error aborts the
// whole action.
func (g *Generator) SaveChargeReceipts(ctx context.Context, st *domain.Statement) ([]string, error) {
	dir, err := g.dir(st.Account, st.Period)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(st.Charges))
	for _, ch := range st.Charges {
		name := ch.SourceID
		if name == "" {
			name = ch.TransactionID
		}
		path := filepath.Join(dir, fmt.Sprintf("charge-%s.pdf", name))
		if err := writeChargeReceipt(path, st.Account, ch); err != nil {
			return nil, fmt.Errorf("writing receipt for charge %s: %w", ch.TransactionID, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeChargeReceipt(path, account string, ch domain.Charge) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Receipt %s", ch.SourceID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Payment Receipt", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeRow(pdf, "Account", account)
	writeRow(pdf, "Charge", ch.SourceID)
	writeRow(pdf, "Transaction", ch.TransactionID)
	writeRow(pdf, "Date", ch.Created.Format("2006-01-02 15:04"))
	writeRow(pdf, "Amount", money.Format(ch.Amount, ch.Currency))
	writeRow(pdf, "Processing fee", money.Format(ch.Fee, ch.Currency))
	if ch.PaymentMethod != "" {
		writeRow(pdf, "Payment method", ch.PaymentMethod)
	}
	if ch.Billing.Name != "" {
		writeRow(pdf, "Billed to", ch.Billing.Name)
	}
	if ch.Billing.Email != "" {
		writeRow(pdf, "Email", ch.Billing.Email)
	}

	if len(ch.Metadata) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Details", "", 1, "L", false, 0, "")
		keys := make([]string, 0, len(ch.Metadata))
		for k := range ch.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeRow(pdf, k, ch.Metadata[k])
		}
	}

	return pdf.OutputFileAndClose(path)
}

func writeRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}
