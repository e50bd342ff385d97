package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MMN3003/loopmint/src/mint/domain"
)

func TestSelectFee(t *testing.T) {
	quote, err := SelectFee(map[string]decimal.Decimal{
		"LRC": decimal.NewFromInt(5),
		"ETH": decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.FeeCurrency, quote.Currency)
	assert.Equal(t, domain.FeeTokenID, quote.FeeTokenID)
	assert.True(t, decimal.NewFromInt(1000).Equal(quote.FeeAmount))
	assert.False(t, quote.Fallback)
}

func TestSelectFee_MissingETH(t *testing.T) {
	_, err := SelectFee(map[string]decimal.Decimal{"LRC": decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, domain.ErrFeeUnavailable)

	_, err = SelectFee(nil)
	assert.ErrorIs(t, err, domain.ErrFeeUnavailable)
}
