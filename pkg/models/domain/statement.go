package domain

import "time"

// Payout is a classified payout transaction. Amount and Fee keep the ledger's
// raw sign; the gross/net/fee totals in Totals carry the reporting sign.
type Payout struct {
	TransactionID string
	SourceID      string
	Amount        int64
	Fee           int64
	Currency      string
	Created       time.Time
	AvailableOn   time.Time
	ArrivalDate   time.Time
}

// Charge is a classified charge transaction together with the customer-facing
// detail pulled from its expanded source object.
type Charge struct {
	TransactionID string
	SourceID      string
	Amount        int64
	Fee           int64
	Currency      string
	Created       time.Time
	AvailableOn   time.Time
	Metadata      map[string]string
	PaymentMethod string
	Billing       BillingDetails
}

// FeeLineItem is one fee-detail line of a charge, attributed back to both the
// transaction and the charge it belongs to.
type FeeLineItem struct {
	TransactionID string
	ChargeID      string
	Amount        int64
	Currency      string
	Description   string
	Created       time.Time
	AvailableOn   time.Time
}

// FeeBuckets holds the per-kind fee line items of all classified charges.
// The three fields are the closed set of FeeKind cases.
type FeeBuckets struct {
	Tax            []FeeLineItem
	StripeFee      []FeeLineItem
	ApplicationFee []FeeLineItem
}

// Totals is the fixed set of accumulators produced by one aggregation pass.
// Every monetary field is minor currency units. Payout and processor-fee
// totals are sign-flipped from the ledger's negative convention so they read
// as positive gross/net/cost figures.
type Totals struct {
	PendingCount int

	PayoutGross int64
	PayoutNet   int64
	PayoutFees  int64

	StripeFees int64

	ChargeGross           int64
	ChargeNet             int64
	ChargeFees            int64
	ChargeStripeFees      int64
	ChargeApplicationFees int64
	ChargeTax             int64
}

// Statement is the result of classifying one account's ledger over one
// period.
type Statement struct {
	Account string
	Period  Period

	Totals  Totals
	Payouts []Payout
	Charges []Charge
	Fees    FeeBuckets

	// Transactions is the audit list: every classified charge or payout in
	// the order the ledger returned it. Skipped entries never appear here.
	Transactions []LedgerTransaction
}
