package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	cases := map[string]PaymentMethod{
		"card":          PaymentCard,
		" CASH ":        PaymentCash,
		"bank_transfer": PaymentBankTransfer,
		"bank-transfer": PaymentBankTransfer,
		"카드":            PaymentCard,
		"현금":            PaymentCash,
		"계좌이체":          PaymentBankTransfer,
	}

	for input, expected := range cases {
		got, err := ParsePaymentMethod(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, got, input)
	}

	_, err := ParsePaymentMethod("bitcoin")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestPaymentMethod_Label(t *testing.T) {
	assert.Equal(t, "계좌이체", PaymentBankTransfer.Label())
	assert.True(t, PaymentCash.IsValid())
	assert.False(t, PaymentMethod("voucher").IsValid())
	assert.Equal(t, "voucher", PaymentMethod("voucher").Label())
}
