package usecase

import (
	"time"

	"github.com/MMN3003/loopmint/src/mint/domain"
)

// MintParams is the complete input of a mint request.
type MintParams struct {
	Exchange  *domain.ExchangeInfo
	Account   *domain.Account
	Token     domain.TokenIdentity
	StorageID domain.SequenceID
	Fee       domain.FeeQuote
	IssuedAt  time.Time
}

// BuildMintRequest assembles the request. It has no side effects and does no
// business validation; the exchange is the authority on acceptance.
func BuildMintRequest(p MintParams) *domain.MintRequest {
	fee := p.Fee
	if fee.Currency == "" {
		fee = domain.FallbackFeeQuote()
	}

	return &domain.MintRequest{
		Exchange:          p.Exchange.ExchangeAddress,
		MinterID:          p.Account.AccountID,
		MinterAddress:     p.Account.Owner,
		ToAccountID:       p.Account.AccountID,
		ToAddress:         p.Account.Owner,
		NFTType:           domain.NFTTypeERC1155,
		TokenAddress:      p.Token.TokenAddress,
		NFTID:             p.Token.NFTID,
		Amount:            domain.MintAmount,
		ValidUntil:        p.IssuedAt.Add(domain.ValidityWindow).Unix(),
		StorageID:         p.StorageID,
		MaxFee:            domain.Fee{TokenID: fee.FeeTokenID, Amount: fee.FeeAmount.String()},
		RoyaltyPercentage: domain.RoyaltyPercentage,
		ForceToMint:       true,
	}
}
