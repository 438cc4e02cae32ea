package stripe

import (
	"context"
	"fmt"
	"time"

	stripesdk "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/services/ledger"
)

const pageLimit = 100

// Client adapts the Stripe SDK's paginated balance-transaction listing into
// the flat Ledger walk. Pagination is handled by the SDK's iterator; any
// transport or auth failure it reports ends the walk immediately — there are
// no retries here.
type Client struct {
	api *client.API
}

// NewClient builds an authenticated client for one account's secret key.
func NewClient(apiKey string) *Client {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &Client{api: api}
}

var _ ledger.Ledger = (*Client)(nil)

func (c *Client) Walk(ctx context.Context, period domain.Period, fn ledger.WalkFunc) error {
	params := &stripesdk.BalanceTransactionListParams{
		CreatedRange: &stripesdk.RangeQueryParams{
			GreaterThanOrEqual: period.Start.Unix(),
			LesserThan:         period.End.Unix(),
		},
	}
	params.Context = ctx
	params.Limit = stripesdk.Int64(pageLimit)
	params.AddExpand("data.source")

	it := c.api.BalanceTransactions.List(params)
	for it.Next() {
		if err := fn(mapTransaction(it.BalanceTransaction())); err != nil {
			return err
		}
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("listing balance transactions: %w", err)
	}
	return nil
}

func (c *Client) WalkInvoices(ctx context.Context, period domain.Period, fn func(inv domain.Invoice) error) error {
	params := &stripesdk.InvoiceListParams{
		CreatedRange: &stripesdk.RangeQueryParams{
			GreaterThanOrEqual: period.Start.Unix(),
			LesserThan:         period.End.Unix(),
		},
	}
	params.Context = ctx
	params.Limit = stripesdk.Int64(pageLimit)

	it := c.api.Invoices.List(params)
	for it.Next() {
		inv := it.Invoice()
		err := fn(domain.Invoice{
			ID:       inv.ID,
			Number:   inv.Number,
			Total:    inv.Total,
			Currency: string(inv.Currency),
			Created:  time.Unix(inv.Created, 0),
			PDFURL:   inv.InvoicePDF,
		})
		if err != nil {
			return err
		}
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("listing invoices: %w", err)
	}
	return nil
}

// EnableDebugLogging makes the SDK log every outbound request.
func EnableDebugLogging() {
	stripesdk.DefaultLeveledLogger = &stripesdk.LeveledLogger{Level: stripesdk.LevelDebug}
}

func mapTransaction(bt *stripesdk.BalanceTransaction) domain.LedgerTransaction {
	tx := domain.LedgerTransaction{
		ID:          bt.ID,
		Type:        domain.TransactionType(bt.Type),
		Status:      domain.TransactionStatus(bt.Status),
		Amount:      bt.Amount,
		Net:         bt.Net,
		Fee:         bt.Fee,
		Currency:    string(bt.Currency),
		Created:     time.Unix(bt.Created, 0),
		AvailableOn: time.Unix(bt.AvailableOn, 0),
	}

	for _, fd := range bt.FeeDetails {
		tx.FeeDetails = append(tx.FeeDetails, domain.FeeDetail{
			Type:        fd.Type,
			Amount:      fd.Amount,
			Currency:    string(fd.Currency),
			Description: fd.Description,
		})
	}

	if bt.Source != nil {
		tx.Source = mapSource(bt.Source)
	}
	return tx
}

// mapSource narrows the SDK's loosely-shaped source union into one of the two
// typed variants this tool cares about. Sources of any other kind are left
// empty; the aggregator decides what that means per transaction type.
func mapSource(src *stripesdk.BalanceTransactionSource) domain.TransactionSource {
	switch {
	case src.Payout != nil:
		return domain.TransactionSource{Payout: &domain.PayoutSource{
			ID:          src.Payout.ID,
			ArrivalDate: time.Unix(src.Payout.ArrivalDate, 0),
		}}
	case src.Charge != nil:
		ch := src.Charge
		out := &domain.ChargeSource{
			ID:       ch.ID,
			Metadata: ch.Metadata,
		}
		if ch.PaymentMethodDetails != nil {
			out.PaymentMethod = string(ch.PaymentMethodDetails.Type)
		}
		if ch.BillingDetails != nil {
			out.Billing = domain.BillingDetails{
				Name:  ch.BillingDetails.Name,
				Email: ch.BillingDetails.Email,
				Phone: ch.BillingDetails.Phone,
			}
		}
		return domain.TransactionSource{Charge: out}
	default:
		return domain.TransactionSource{}
	}
}
