package statement

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
)

// Aggregator folds a stream of ledger transactions into a Statement. It is a
// single-pass accumulator: feed every transaction of the period through Add,
// then read the result with Statement. Adding is strictly sequential and the
// outcome depends only on the input sequence.
type Aggregator struct {
	account string
	period  domain.Period

	totals  domain.Totals
	payouts []domain.Payout
	charges []domain.Charge
	fees    domain.FeeBuckets
	audit   []domain.LedgerTransaction
}

func NewAggregator(account string, period domain.Period) *Aggregator {
	return &Aggregator{account: account, period: period}
}

// Add classifies one transaction and folds it into the running totals.
// Every transaction gets exactly one disposition: counted as pending, skipped
// with a warning, or classified. Anomalous records are never an error — a
// single unrecognized entry must not abort the run.
func (a *Aggregator) Add(ctx context.Context, tx domain.LedgerTransaction) error {
	logger := zerolog.Ctx(ctx)

	if tx.Status == domain.StatusPending {
		a.totals.PendingCount++
		return nil
	}
	if tx.Status != domain.StatusAvailable {
		logger.Warn().
			Str("id", tx.ID).
			Str("status", string(tx.Status)).
			Str("type", string(tx.Type)).
			Int64("amount", tx.Amount).
			Msg("skipping transaction with unrecognized status")
		return nil
	}

	switch tx.Type {
	case domain.TransactionStripeFee:
		// The ledger books processor fees as negative movements; report them
		// as a positive cost.
		a.totals.StripeFees += -tx.Amount
	case domain.TransactionPayout:
		a.addPayout(ctx, tx)
		a.audit = append(a.audit, tx)
	case domain.TransactionCharge:
		a.addCharge(ctx, tx)
		a.audit = append(a.audit, tx)
	default:
		logger.Warn().
			Str("id", tx.ID).
			Str("type", string(tx.Type)).
			Msg("skipping transaction with unrecognized type")
	}
	return nil
}

func (a *Aggregator) addPayout(ctx context.Context, tx domain.LedgerTransaction) {
	// Payout amounts are negative from the account's perspective; flip gross
	// and net for reporting. The transaction fee is already positive.
	a.totals.PayoutGross += -tx.Amount
	a.totals.PayoutNet += -tx.Net
	a.totals.PayoutFees += tx.Fee

	payout := domain.Payout{
		TransactionID: tx.ID,
		Amount:        tx.Amount,
		Fee:           tx.Fee,
		Currency:      tx.Currency,
		Created:       tx.Created,
		AvailableOn:   tx.AvailableOn,
	}
	if src := tx.Source.Payout; src != nil {
		payout.SourceID = src.ID
		// The bank arrival date lives on the payout object itself, not on
		// the transaction's AvailableOn.
		payout.ArrivalDate = src.ArrivalDate
	} else {
		zerolog.Ctx(ctx).Warn().
			Str("id", tx.ID).
			Msg("payout transaction without an expanded payout source")
	}
	a.payouts = append(a.payouts, payout)
}

func (a *Aggregator) addCharge(ctx context.Context, tx domain.LedgerTransaction) {
	for _, fd := range tx.FeeDetails {
		item := domain.FeeLineItem{
			TransactionID: tx.ID,
			Amount:        fd.Amount,
			Currency:      fd.Currency,
			Description:   fd.Description,
			Created:       tx.Created,
			AvailableOn:   tx.AvailableOn,
		}
		if src := tx.Source.Charge; src != nil {
			item.ChargeID = src.ID
		}

		switch classifyFee(fd.Type) {
		case domain.FeeKindStripeFee:
			a.totals.ChargeStripeFees += fd.Amount
			a.fees.StripeFee = append(a.fees.StripeFee, item)
		case domain.FeeKindApplication:
			a.totals.ChargeApplicationFees += fd.Amount
			a.fees.ApplicationFee = append(a.fees.ApplicationFee, item)
		case domain.FeeKindTax:
			if fd.Type != string(domain.FeeKindTax) {
				zerolog.Ctx(ctx).Warn().
					Str("id", tx.ID).
					Str("fee_type", fd.Type).
					Msg("unrecognized fee-detail type, counting as tax")
			}
			a.totals.ChargeTax += fd.Amount
			a.fees.Tax = append(a.fees.Tax, item)
		}
	}

	a.totals.ChargeGross += tx.Amount
	a.totals.ChargeNet += tx.Net
	a.totals.ChargeFees += tx.Fee

	charge := domain.Charge{
		TransactionID: tx.ID,
		Amount:        tx.Amount,
		Fee:           tx.Fee,
		Currency:      tx.Currency,
		Created:       tx.Created,
		AvailableOn:   tx.AvailableOn,
	}
	if src := tx.Source.Charge; src != nil {
		charge.SourceID = src.ID
		charge.Metadata = src.Metadata
		charge.PaymentMethod = src.PaymentMethod
		charge.Billing = src.Billing
	}
	a.charges = append(a.charges, charge)
}

// classifyFee maps a fee-detail type tag into the closed FeeKind set. Tags
// matching neither known fee kind fall into the tax bucket.
func classifyFee(tag string) domain.FeeKind {
	switch tag {
	case string(domain.FeeKindStripeFee):
		return domain.FeeKindStripeFee
	case string(domain.FeeKindApplication):
		return domain.FeeKindApplication
	default:
		return domain.FeeKindTax
	}
}

// Statement returns the accumulated result.
func (a *Aggregator) Statement() *domain.Statement {
	return &domain.Statement{
		Account:      a.account,
		Period:       a.period,
		Totals:       a.totals,
		Payouts:      a.payouts,
		Charges:      a.charges,
		Fees:         a.fees,
		Transactions: a.audit,
	}
}
