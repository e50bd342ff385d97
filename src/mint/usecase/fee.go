package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MMN3003/loopmint/src/mint/domain"
)

// SelectFee picks the native-currency entry from a fee table.
func SelectFee(fees map[string]decimal.Decimal) (domain.FeeQuote, error) {
	amount, ok := fees[domain.FeeCurrency]
	if !ok {
		return domain.FeeQuote{}, fmt.Errorf("%w: no %s entry", domain.ErrFeeUnavailable, domain.FeeCurrency)
	}
	return domain.FeeQuote{
		FeeTokenID: domain.FeeTokenID,
		FeeAmount:  amount,
		Currency:   domain.FeeCurrency,
	}, nil
}
