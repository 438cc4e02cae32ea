package ledger

import (
	"context"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
)

// WalkFunc receives one ledger transaction at a time. Returning an error
// stops the walk and surfaces that error to the caller.
type WalkFunc func(tx domain.LedgerTransaction) error

// Ledger lists balance-affecting transactions for a time window. A Walk
// covers the half-open window [period.Start, period.End) in created-time as
// one flat sequence, in the order the upstream ledger returns it, however
// many pages that takes.
type Ledger interface {
	Walk(ctx context.Context, period domain.Period, fn WalkFunc) error
}

// InvoiceWalker lists finalized invoices for a time window.
type InvoiceWalker interface {
	WalkInvoices(ctx context.Context, period domain.Period, fn func(inv domain.Invoice) error) error
}
