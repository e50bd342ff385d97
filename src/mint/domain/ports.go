package domain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// Exchange is the layer-2 exchange API. Implementations wrap transport
// failures with ErrTransport.
type Exchange interface {
	GetExchangeInfo(ctx context.Context) (*ExchangeInfo, error)
	// GetAccount returns ErrAccountNotFound for an unregistered owner.
	GetAccount(ctx context.Context, owner string) (*Account, error)
	IssueAPIKey(ctx context.Context, accountID uint32, secretKey string) (*APICredential, error)
	NextStorageID(ctx context.Context, cred *APICredential, sellTokenID uint32) (SequenceID, error)
	// MintFees returns fee amounts keyed by currency symbol.
	MintFees(ctx context.Context, cred *APICredential, tokenAddress string, requestType int) (map[string]decimal.Decimal, error)
	SignNFTMint(req *MintRequest, secretKey string) (string, error)
	// SubmitNFTMint reports exchange-side rejections through MintResult.StatusCode.
	SubmitNFTMint(ctx context.Context, cred *APICredential, req *MintRequest, signature string) (*MintResult, error)
}

// WalletSigner is the owner's layer-1 wallet.
type WalletSigner interface {
	Address() common.Address
	PersonalSign(message []byte) ([]byte, error)
}

// MintUseCase runs one mint from exchange lookup to submission.
type MintUseCase interface {
	Run(ctx context.Context, opts MintOptions) (*MintOutcome, error)
}
