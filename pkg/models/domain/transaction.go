package domain

import "time"

// TransactionType tags a ledger transaction with the kind of money movement
// it records.
type TransactionType string

const (
	TransactionCharge    TransactionType = "charge"
	TransactionPayout    TransactionType = "payout"
	TransactionStripeFee TransactionType = "stripe_fee"
)

// TransactionStatus reflects whether the funds behind a transaction have
// settled into the available balance.
type TransactionStatus string

const (
	StatusAvailable TransactionStatus = "available"
	StatusPending   TransactionStatus = "pending"
)

// FeeKind is the closed set of buckets a charge's fee-detail line items are
// routed into.
type FeeKind string

const (
	FeeKindTax         FeeKind = "tax"
	FeeKindStripeFee   FeeKind = "stripe_fee"
	FeeKindApplication FeeKind = "application_fee"
)

// FeeDetail is one deduction line inside a charge transaction.
type FeeDetail struct {
	Type        string
	Amount      int64
	Currency    string
	Description string
}

// PayoutSource is the payout object a payout transaction points at. Its
// ArrivalDate is the bank arrival date, which is not the same instant as the
// transaction's own AvailableOn.
type PayoutSource struct {
	ID          string
	ArrivalDate time.Time
}

// BillingDetails carries the customer-facing billing fields attached to a
// charge's payment method.
type BillingDetails struct {
	Name  string
	Email string
	Phone string
}

// ChargeSource is the charge object a charge transaction points at.
type ChargeSource struct {
	ID            string
	Metadata      map[string]string
	PaymentMethod string
	Billing       BillingDetails
}

// TransactionSource holds exactly one of the two source variants, selected by
// the owning transaction's Type.
type TransactionSource struct {
	Payout *PayoutSource
	Charge *ChargeSource
}

// LedgerTransaction is one balance-affecting entry as reported by the payment
// processor. All monetary fields are signed integers in minor currency units.
// Amounts follow the ledger's own convention: fees and payouts are recorded
// as negative movements from the account's perspective.
type LedgerTransaction struct {
	ID          string
	Type        TransactionType
	Status      TransactionStatus
	Amount      int64
	Net         int64
	Fee         int64
	Currency    string
	Created     time.Time
	AvailableOn time.Time
	FeeDetails  []FeeDetail
	Source      TransactionSource
}
