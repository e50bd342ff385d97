package loopring

// ExchangeInfo is the subset of /api/v3/exchange/info the mint flow reads.
type ExchangeInfo struct {
	ChainID         int64  `json:"chainId"`
	ExchangeAddress string `json:"exchangeAddress"`
	DepositAddress  string `json:"depositAddress,omitempty"`
}

type PublicKey struct {
	X string `json:"x"`
	Y string `json:"y"`
}

type Account struct {
	AccountID uint32    `json:"accountId"`
	Owner     string    `json:"owner"`
	Frozen    bool      `json:"frozen"`
	PublicKey PublicKey `json:"publicKey"`
	Tags      string    `json:"tags,omitempty"`
	Nonce     uint32    `json:"nonce"`
	KeyNonce  uint32    `json:"keyNonce,omitempty"`
	KeySeed   string    `json:"keySeed,omitempty"`
}

type apiKeyResponse struct {
	APIKey string `json:"apiKey"`
}

// StorageID is the next free slot for an account/token pair.
type StorageID struct {
	OrderID    uint32 `json:"orderId"`
	OffchainID uint32 `json:"offchainId"`
}

type TokenFee struct {
	Token    string `json:"token"`
	Fee      string `json:"fee"`
	Discount any    `json:"discount,omitempty"`
}

type OffchainFee struct {
	GasPrice string     `json:"gasPrice,omitempty"`
	Fees     []TokenFee `json:"fees"`
}

type MaxFee struct {
	TokenID uint32 `json:"tokenId"`
	Amount  string `json:"amount"`
}

// NFTMintRequest is the POST /api/v3/nft/mint body without its signature.
type NFTMintRequest struct {
	Exchange          string `json:"exchange"`
	MinterID          uint32 `json:"minterId"`
	MinterAddress     string `json:"minterAddress"`
	ToAccountID       uint32 `json:"toAccountId"`
	ToAddress         string `json:"toAddress"`
	NFTType           int    `json:"nftType"`
	TokenAddress      string `json:"tokenAddress"`
	NFTID             string `json:"nftId"`
	Amount            string `json:"amount"`
	ValidUntil        int64  `json:"validUntil"`
	StorageID         uint32 `json:"storageId"`
	MaxFee            MaxFee `json:"maxFee"`
	RoyaltyPercentage int    `json:"royaltyPercentage"`
	ForceToMint       bool   `json:"forceToMint"`
}

// SignedNFTMint is what actually goes over the wire.
type SignedNFTMint struct {
	NFTMintRequest
	EddsaSignature string `json:"eddsaSignature"`
}

type NFTMintResponse struct {
	Hash         string `json:"hash"`
	NFTTokenID   uint32 `json:"nftTokenId"`
	NFTData      string `json:"nftData"`
	Status       string `json:"status"`
	IsIdempotent bool   `json:"isIdempotent"`
	AccountID    uint32 `json:"accountId"`
	StorageID    uint32 `json:"storageId"`
}
