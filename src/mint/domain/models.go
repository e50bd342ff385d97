package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the exchange's view of the owner, fetched once per run.
type Account struct {
	Owner      string `json:"owner"`
	AccountID  uint32 `json:"accountId"`
	Nonce      uint32 `json:"nonce"`
	KeySeed    string `json:"keySeed,omitempty"`
	PublicKeyX string `json:"publicKeyX,omitempty"`
	PublicKeyY string `json:"publicKeyY,omitempty"`
}

// ExchangeInfo can change between runs; it is never cached.
type ExchangeInfo struct {
	ExchangeAddress string `json:"exchangeAddress"`
	ChainID         int64  `json:"chainId"`
}

// SigningKeyPair is the layer-2 EdDSA key. It lives in process memory only.
type SigningKeyPair struct {
	SecretKey  string `json:"-"`
	PublicKeyX string `json:"publicKeyX"`
	PublicKeyY string `json:"publicKeyY"`
}

// APICredential is valid for the session that produced it.
type APICredential struct {
	AccountID uint32
	APIKey    string
}

// SequenceID is the exchange's storage id for replay protection.
type SequenceID uint32

// TokenIdentity ties the content id to the on-chain token.
type TokenIdentity struct {
	FactoryAddress string
	OwnerAddress   string
	TokenAddress   string
	ContentID      string
	NFTID          string
}

// FeeQuote is time-sensitive; fetch it right before building the request.
type FeeQuote struct {
	FeeTokenID uint32
	FeeAmount  decimal.Decimal
	Currency   string

	// Fallback marks FallbackMaxFee substituted for a missing quote.
	Fallback bool
}

type Fee struct {
	TokenID uint32 `json:"tokenId"`
	Amount  string `json:"amount"`
}

// MintRequest is the signable mint payload.
type MintRequest struct {
	Exchange          string     `json:"exchange"`
	MinterID          uint32     `json:"minterId"`
	MinterAddress     string     `json:"minterAddress"`
	ToAccountID       uint32     `json:"toAccountId"`
	ToAddress         string     `json:"toAddress"`
	NFTType           int        `json:"nftType"`
	TokenAddress      string     `json:"tokenAddress"`
	NFTID             string     `json:"nftId"`
	Amount            string     `json:"amount"`
	ValidUntil        int64      `json:"validUntil"`
	StorageID         SequenceID `json:"storageId"`
	MaxFee            Fee        `json:"maxFee"`
	RoyaltyPercentage int        `json:"royaltyPercentage"`
	ForceToMint       bool       `json:"forceToMint"`
}

// Expired reports whether the request can no longer be accepted at t.
func (r *MintRequest) Expired(t time.Time) bool {
	return r.ValidUntil <= t.Unix()
}

// MintResult is what the exchange answered; StatusSuccess means accepted.
type MintResult struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Hash       string `json:"hash,omitempty"`
	NFTTokenID uint32 `json:"nftTokenId,omitempty"`
	NFTData    string `json:"nftData,omitempty"`
	Status     string `json:"status,omitempty"`
}

// MintOptions are the per-run inputs that do not come from configuration.
type MintOptions struct {
	// ContentID overrides the configured CID when set.
	ContentID string
	// DryRun stops after signing.
	DryRun bool
}

// MintOutcome is everything a run reports to its caller.
type MintOutcome struct {
	TokenAddress string
	Request      *MintRequest
	Signature    string
	Result       *MintResult
}

const (
	StatusSuccess = 0

	// NFTTypeERC1155 is the exchange's mintable NFT type tag.
	NFTTypeERC1155 = 0

	// RoyaltyPercentage goes to the minter on every secondary sale.
	RoyaltyPercentage = 5

	// MintAmount is the number of editions minted.
	MintAmount = "100"

	// ValidityWindow bounds how long the signed request stays acceptable.
	ValidityWindow = 30 * 24 * time.Hour

	// SellTokenIDNone is the sell token for operations that spend no balance.
	SellTokenIDNone uint32 = 0

	// FeeCurrency is the native chain currency fees are paid in, token id 0.
	FeeCurrency = "ETH"

	FeeTokenID uint32 = 0

	// FeeRequestTypeMint is the exchange's off-chain fee request type for NFT mints.
	FeeRequestTypeMint = 9

	// WalletTypeUnknown is an externally owned key, not a contract wallet.
	WalletTypeUnknown = "Unknown"

	// EmptyTokenAddress lets the exchange pick the contract implicitly.
	EmptyTokenAddress = ""
)

// FallbackMaxFee is a conservative ceiling in wei used only when the fee
// oracle has no ETH entry. It is not a quote.
var FallbackMaxFee = decimal.RequireFromString("8370000000000000000")

// FallbackFeeQuote is the substitute quote for a missing ETH entry.
func FallbackFeeQuote() FeeQuote {
	return FeeQuote{
		FeeTokenID: FeeTokenID,
		FeeAmount:  FallbackMaxFee,
		Currency:   FeeCurrency,
		Fallback:   true,
	}
}
