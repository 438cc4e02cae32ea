package statement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
)

var testPeriod = domain.Period{
	Start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
}

func feed(t *testing.T, txs ...domain.LedgerTransaction) *domain.Statement {
	t.Helper()
	agg := NewAggregator("acme", testPeriod)
	ctx := context.Background()
	for _, tx := range txs {
		require.NoError(t, agg.Add(ctx, tx))
	}
	return agg.Statement()
}

func TestAdd_PendingTransaction_OnlyIncrementsPendingCount(t *testing.T) {
	st := feed(t, domain.LedgerTransaction{
		ID:     "txn_1",
		Type:   domain.TransactionCharge,
		Status: domain.StatusPending,
		Amount: 1000,
	})

	assert.Equal(t, domain.Totals{PendingCount: 1}, st.Totals)
	assert.Empty(t, st.Transactions)
	assert.Empty(t, st.Charges)
}

func TestAdd_UnrecognizedStatus_IsSkipped(t *testing.T) {
	st := feed(t, domain.LedgerTransaction{
		ID:     "txn_1",
		Type:   domain.TransactionCharge,
		Status: "frozen",
		Amount: 1000,
	})

	assert.Equal(t, domain.Totals{}, st.Totals)
	assert.Empty(t, st.Transactions)
}

func TestAdd_UnrecognizedType_IsSkipped(t *testing.T) {
	st := feed(t, domain.LedgerTransaction{
		ID:     "txn_1",
		Type:   "adjustment",
		Status: domain.StatusAvailable,
		Amount: 1000,
	})

	assert.Equal(t, domain.Totals{}, st.Totals)
	assert.Empty(t, st.Transactions)
}

func TestAdd_StripeFee_NegatesAmountIntoFeeTotal(t *testing.T) {
	st := feed(t, domain.LedgerTransaction{
		ID:     "txn_fee",
		Type:   domain.TransactionStripeFee,
		Status: domain.StatusAvailable,
		Amount: -250,
	})

	assert.Equal(t, int64(250), st.Totals.StripeFees)
	// Fee transactions are totalled but not part of the charge/payout audit
	// list.
	assert.Empty(t, st.Transactions)
}

func TestAdd_Payout_FlipsSignsAndTakesArrivalFromSource(t *testing.T) {
	// Given
	arrival := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	available := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
	tx := domain.LedgerTransaction{
		ID:          "txn_po",
		Type:        domain.TransactionPayout,
		Status:      domain.StatusAvailable,
		Amount:      -5000,
		Net:         -4950,
		Fee:         50,
		Currency:    "usd",
		AvailableOn: available,
		Source: domain.TransactionSource{
			Payout: &domain.PayoutSource{ID: "po_1", ArrivalDate: arrival},
		},
	}

	// When
	st := feed(t, tx)

	// Then
	assert.Equal(t, int64(5000), st.Totals.PayoutGross)
	assert.Equal(t, int64(4950), st.Totals.PayoutNet)
	assert.Equal(t, int64(50), st.Totals.PayoutFees)
	require.Len(t, st.Payouts, 1)
	po := st.Payouts[0]
	assert.Equal(t, int64(-5000), po.Amount)
	assert.Equal(t, "po_1", po.SourceID)
	assert.Equal(t, arrival, po.ArrivalDate)
	assert.Equal(t, available, po.AvailableOn)
	assert.Len(t, st.Transactions, 1)
}

func TestAdd_Charge_EndToEnd(t *testing.T) {
	tx := domain.LedgerTransaction{
		ID:       "txn_ch",
		Type:     domain.TransactionCharge,
		Status:   domain.StatusAvailable,
		Amount:   1000,
		Net:      970,
		Fee:      30,
		Currency: "usd",
		FeeDetails: []domain.FeeDetail{
			{Type: "stripe_fee", Amount: 30, Currency: "usd", Description: "Stripe processing fees"},
		},
		Source: domain.TransactionSource{
			Charge: &domain.ChargeSource{
				ID:            "ch_1",
				Metadata:      map[string]string{"order": "1234"},
				PaymentMethod: "card",
				Billing:       domain.BillingDetails{Name: "Jane Doe"},
			},
		},
	}

	st := feed(t, tx)

	assert.Equal(t, int64(1000), st.Totals.ChargeGross)
	assert.Equal(t, int64(970), st.Totals.ChargeNet)
	assert.Equal(t, int64(30), st.Totals.ChargeFees)
	assert.Equal(t, int64(30), st.Totals.ChargeStripeFees)
	assert.Zero(t, st.Totals.ChargeApplicationFees)
	assert.Zero(t, st.Totals.ChargeTax)

	require.Len(t, st.Charges, 1)
	ch := st.Charges[0]
	assert.Equal(t, int64(1000), ch.Amount)
	assert.Equal(t, "ch_1", ch.SourceID)
	assert.Equal(t, "card", ch.PaymentMethod)
	assert.Equal(t, "Jane Doe", ch.Billing.Name)

	require.Len(t, st.Fees.StripeFee, 1)
	assert.Equal(t, "ch_1", st.Fees.StripeFee[0].ChargeID)
	assert.Empty(t, st.Fees.Tax)
	assert.Empty(t, st.Fees.ApplicationFee)
}

func TestAdd_FeeDetails_RouteWithoutDropsOrDoubleCounting(t *testing.T) {
	tx := domain.LedgerTransaction{
		ID:     "txn_ch",
		Type:   domain.TransactionCharge,
		Status: domain.StatusAvailable,
		Amount: 2000,
		Net:    1850,
		Fee:    150,
		FeeDetails: []domain.FeeDetail{
			{Type: "stripe_fee", Amount: 60},
			{Type: "application_fee", Amount: 50},
			{Type: "tax", Amount: 30},
			{Type: "mystery_fee", Amount: 10},
		},
	}

	st := feed(t, tx)

	// The unknown tag lands in the tax bucket.
	assert.Equal(t, int64(60), st.Totals.ChargeStripeFees)
	assert.Equal(t, int64(50), st.Totals.ChargeApplicationFees)
	assert.Equal(t, int64(40), st.Totals.ChargeTax)
	assert.Len(t, st.Fees.Tax, 2)

	routed := st.Totals.ChargeStripeFees + st.Totals.ChargeApplicationFees + st.Totals.ChargeTax
	var detailSum int64
	for _, fd := range tx.FeeDetails {
		detailSum += fd.Amount
	}
	assert.Equal(t, detailSum, routed)
}

func TestAdd_BucketSumsMatchTotals(t *testing.T) {
	txs := []domain.LedgerTransaction{
		{ID: "t1", Type: domain.TransactionCharge, Status: domain.StatusAvailable, Amount: 1000, Net: 970, Fee: 30,
			FeeDetails: []domain.FeeDetail{{Type: "stripe_fee", Amount: 30}}},
		{ID: "t2", Type: domain.TransactionCharge, Status: domain.StatusAvailable, Amount: 500, Net: 450, Fee: 50,
			FeeDetails: []domain.FeeDetail{{Type: "tax", Amount: 20}, {Type: "stripe_fee", Amount: 30}}},
		{ID: "t3", Type: domain.TransactionPayout, Status: domain.StatusAvailable, Amount: -1400, Net: -1400,
			Source: domain.TransactionSource{Payout: &domain.PayoutSource{ID: "po_1"}}},
		{ID: "t4", Type: domain.TransactionStripeFee, Status: domain.StatusAvailable, Amount: -15},
		{ID: "t5", Type: domain.TransactionCharge, Status: domain.StatusPending, Amount: 999},
	}

	st := feed(t, txs...)

	var chargeGross int64
	for _, ch := range st.Charges {
		chargeGross += ch.Amount
	}
	assert.Equal(t, st.Totals.ChargeGross, chargeGross)

	var taxSum int64
	for _, item := range st.Fees.Tax {
		taxSum += item.Amount
	}
	assert.Equal(t, st.Totals.ChargeTax, taxSum)

	var stripeFeeSum int64
	for _, item := range st.Fees.StripeFee {
		stripeFeeSum += item.Amount
	}
	assert.Equal(t, st.Totals.ChargeStripeFees, stripeFeeSum)

	assert.Equal(t, 1, st.Totals.PendingCount)
	assert.Equal(t, int64(15), st.Totals.StripeFees)
	// Audit list holds classified charges and payouts in arrival order.
	require.Len(t, st.Transactions, 3)
	assert.Equal(t, "t1", st.Transactions[0].ID)
	assert.Equal(t, "t3", st.Transactions[2].ID)
}

func TestAggregation_IsDeterministic(t *testing.T) {
	txs := []domain.LedgerTransaction{
		{ID: "t1", Type: domain.TransactionCharge, Status: domain.StatusAvailable, Amount: 1000, Net: 970, Fee: 30,
			FeeDetails: []domain.FeeDetail{{Type: "stripe_fee", Amount: 30}}},
		{ID: "t2", Type: domain.TransactionPayout, Status: domain.StatusAvailable, Amount: -900, Net: -900,
			Source: domain.TransactionSource{Payout: &domain.PayoutSource{ID: "po_1"}}},
		{ID: "t3", Type: "unknown", Status: domain.StatusAvailable},
	}

	first := feed(t, txs...)
	second := feed(t, txs...)

	assert.Equal(t, first, second)
}

func TestAdd_OnePendingOnly_AllOtherTotalsZero(t *testing.T) {
	st := feed(t, domain.LedgerTransaction{
		ID:     "t1",
		Type:   domain.TransactionCharge,
		Status: domain.StatusPending,
	})

	assert.Equal(t, 1, st.Totals.PendingCount)
	assert.Empty(t, st.Transactions)
	assert.Empty(t, st.Payouts)
	assert.Empty(t, st.Charges)
	assert.Zero(t, st.Totals.ChargeGross)
	assert.Zero(t, st.Totals.PayoutGross)
	assert.Zero(t, st.Totals.StripeFees)
}
