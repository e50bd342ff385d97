package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MMN3003/loopmint/src/mint/domain"
)

func scenarioParams() MintParams {
	return MintParams{
		Exchange: &domain.ExchangeInfo{ExchangeAddress: testExchange, ChainID: 5},
		Account: &domain.Account{
			Owner:     "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
			AccountID: 7,
			Nonce:     3,
		},
		Token: domain.TokenIdentity{
			ContentID:    "bafy123",
			NFTID:        "0x01",
			TokenAddress: "0x3333333333333333333333333333333333333333",
		},
		StorageID: 42,
		Fee: domain.FeeQuote{
			FeeTokenID: 0,
			FeeAmount:  decimal.NewFromInt(1000),
			Currency:   domain.FeeCurrency,
		},
		IssuedAt: time.Unix(1_700_000_000, 0),
	}
}

func TestBuildMintRequest_Scenario(t *testing.T) {
	req := BuildMintRequest(scenarioParams())

	assert.Equal(t, domain.SequenceID(42), req.StorageID)
	assert.Equal(t, "100", req.Amount)
	assert.Equal(t, 5, req.RoyaltyPercentage)
	assert.True(t, req.ForceToMint)
	assert.Equal(t, "1000", req.MaxFee.Amount)
	assert.Equal(t, uint32(0), req.MaxFee.TokenID)
	assert.Equal(t, uint32(7), req.MinterID)
	assert.Equal(t, uint32(7), req.ToAccountID)
	assert.Equal(t, "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", req.MinterAddress)
	assert.Equal(t, req.MinterAddress, req.ToAddress)
	assert.Equal(t, testExchange, req.Exchange)
	assert.Equal(t, domain.NFTTypeERC1155, req.NFTType)
	assert.Equal(t, "0x01", req.NFTID)
}

func TestBuildMintRequest_ValidityWindow(t *testing.T) {
	p := scenarioParams()
	req := BuildMintRequest(p)

	assert.Equal(t, p.IssuedAt.Add(30*24*time.Hour).Unix(), req.ValidUntil)
	assert.False(t, req.Expired(p.IssuedAt))
	assert.False(t, req.Expired(p.IssuedAt.Add(30*24*time.Hour-time.Second)))
	assert.True(t, req.Expired(p.IssuedAt.Add(30*24*time.Hour)))
}

func TestBuildMintRequest_Pure(t *testing.T) {
	assert.Equal(t, BuildMintRequest(scenarioParams()), BuildMintRequest(scenarioParams()))
}

func TestBuildMintRequest_FallbackFee(t *testing.T) {
	p := scenarioParams()
	p.Fee = domain.FeeQuote{}

	req := BuildMintRequest(p)
	assert.Equal(t, "8370000000000000000", req.MaxFee.Amount)
	assert.Equal(t, domain.FeeTokenID, req.MaxFee.TokenID)
}

func TestBuildMintRequest_EmptyTokenAddress(t *testing.T) {
	p := scenarioParams()
	p.Token.TokenAddress = domain.EmptyTokenAddress

	assert.Empty(t, BuildMintRequest(p).TokenAddress)
}
