package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/services/money"
)

// Reporter renders a classified statement to the console in formatted text.
// It is pure presentation; every figure it prints was computed upstream.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(st *domain.Statement) error {
	currency := statementCurrency(st)

	funcMap := template.FuncMap{
		"money": func(minor int64) string {
			return money.Format(minor, currency)
		},
		"feeRow": func(item domain.FeeLineItem) string {
			return fmt.Sprintf("- %-28s %16s  %s",
				item.ChargeID, money.Format(item.Amount, item.Currency), item.Description)
		},
	}

	tmpl := `
Statement for {{.Account}}
Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}} (exclusive)

Pending transactions:    {{.Totals.PendingCount}}
Classified transactions: {{len .Transactions}}

=== Charges ({{len .Charges}}) ===
Gross: {{money .Totals.ChargeGross}}
Net:   {{money .Totals.ChargeNet}}
Fees:  {{money .Totals.ChargeFees}}
  Processor fees:   {{money .Totals.ChargeStripeFees}}
  Application fees: {{money .Totals.ChargeApplicationFees}}
  Tax:              {{money .Totals.ChargeTax}}

=== Payouts ({{len .Payouts}}) ===
Gross: {{money .Totals.PayoutGross}}
Net:   {{money .Totals.PayoutNet}}
Fees:  {{money .Totals.PayoutFees}}

=== Processor fee transactions ===
Total: {{money .Totals.StripeFees}}
{{if .Fees.Tax}}
=== Tax line items ({{len .Fees.Tax}}) ===
{{range .Fees.Tax}}{{feeRow .}}
{{end}}{{end}}{{if .Fees.StripeFee}}
=== Processor fee line items ({{len .Fees.StripeFee}}) ===
{{range .Fees.StripeFee}}{{feeRow .}}
{{end}}{{end}}{{if .Fees.ApplicationFee}}
=== Application fee line items ({{len .Fees.ApplicationFee}}) ===
{{range .Fees.ApplicationFee}}{{feeRow .}}
{{end}}{{end}}`

	t, err := template.New("statement").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, st)
}

// statementCurrency picks the display currency from the first classified
// transaction. Totals are integer minor units either way.
func statementCurrency(st *domain.Statement) string {
	for _, tx := range st.Transactions {
		if tx.Currency != "" {
			return tx.Currency
		}
	}
	return "usd"
}
