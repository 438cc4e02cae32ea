package stripe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripesdk "github.com/stripe/stripe-go/v82"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
)

func TestMapTransaction_Charge(t *testing.T) {
	created := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	bt := &stripesdk.BalanceTransaction{
		ID:          "txn_1",
		Type:        stripesdk.BalanceTransactionTypeCharge,
		Status:      stripesdk.BalanceTransactionStatusAvailable,
		Amount:      1000,
		Net:         970,
		Fee:         30,
		Currency:    stripesdk.CurrencyUSD,
		Created:     created.Unix(),
		AvailableOn: created.Add(48 * time.Hour).Unix(),
		FeeDetails: []*stripesdk.BalanceTransactionFeeDetail{
			{Type: "stripe_fee", Amount: 30, Currency: stripesdk.CurrencyUSD, Description: "Stripe processing fees"},
		},
		Source: &stripesdk.BalanceTransactionSource{
			Charge: &stripesdk.Charge{
				ID:       "ch_1",
				Metadata: map[string]string{"order": "1234"},
				PaymentMethodDetails: &stripesdk.ChargePaymentMethodDetails{
					Type: stripesdk.ChargePaymentMethodDetailsTypeCard,
				},
				BillingDetails: &stripesdk.ChargeBillingDetails{
					Name:  "Jane Doe",
					Email: "jane@example.com",
				},
			},
		},
	}

	tx := mapTransaction(bt)

	assert.Equal(t, "txn_1", tx.ID)
	assert.Equal(t, domain.TransactionCharge, tx.Type)
	assert.Equal(t, domain.StatusAvailable, tx.Status)
	assert.Equal(t, int64(1000), tx.Amount)
	assert.Equal(t, int64(970), tx.Net)
	assert.Equal(t, int64(30), tx.Fee)
	assert.Equal(t, "usd", tx.Currency)
	assert.Equal(t, created, tx.Created.UTC())

	require.Len(t, tx.FeeDetails, 1)
	assert.Equal(t, "stripe_fee", tx.FeeDetails[0].Type)
	assert.Equal(t, int64(30), tx.FeeDetails[0].Amount)

	require.NotNil(t, tx.Source.Charge)
	assert.Nil(t, tx.Source.Payout)
	assert.Equal(t, "ch_1", tx.Source.Charge.ID)
	assert.Equal(t, "card", tx.Source.Charge.PaymentMethod)
	assert.Equal(t, "Jane Doe", tx.Source.Charge.Billing.Name)
	assert.Equal(t, map[string]string{"order": "1234"}, tx.Source.Charge.Metadata)
}

func TestMapTransaction_PayoutArrivalDate(t *testing.T) {
	arrival := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	bt := &stripesdk.BalanceTransaction{
		ID:     "txn_2",
		Type:   stripesdk.BalanceTransactionTypePayout,
		Status: stripesdk.BalanceTransactionStatusAvailable,
		Amount: -5000,
		Net:    -4950,
		Fee:    50,
		Source: &stripesdk.BalanceTransactionSource{
			Payout: &stripesdk.Payout{ID: "po_1", ArrivalDate: arrival.Unix()},
		},
	}

	tx := mapTransaction(bt)

	require.NotNil(t, tx.Source.Payout)
	assert.Nil(t, tx.Source.Charge)
	assert.Equal(t, "po_1", tx.Source.Payout.ID)
	assert.Equal(t, arrival, tx.Source.Payout.ArrivalDate.UTC())
}

func TestMapTransaction_UnknownSourceKind_LeavesSourceEmpty(t *testing.T) {
	bt := &stripesdk.BalanceTransaction{
		ID:     "txn_3",
		Type:   stripesdk.BalanceTransactionTypeStripeFee,
		Status: stripesdk.BalanceTransactionStatusAvailable,
		Amount: -15,
		Source: &stripesdk.BalanceTransactionSource{},
	}

	tx := mapTransaction(bt)

	assert.Nil(t, tx.Source.Payout)
	assert.Nil(t, tx.Source.Charge)
}
