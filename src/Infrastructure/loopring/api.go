package loopring

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MMN3003/loopmint/src/Infrastructure/eddsa"
)

const (
	pathExchangeInfo = "/api/v3/exchange/info"
	pathAccount      = "/api/v3/account"
	pathAPIKey       = "/api/v3/apiKey"
	pathStorageID    = "/api/v3/storageId"
	pathNFTFee       = "/api/v3/user/nft/offchainFee"
	pathNFTMint      = "/api/v3/nft/mint"
)

// Codes the exchange uses for conditions callers branch on.
const (
	CodeAccountNotFound = 101002
	CodeInvalidAPISig   = 104001
	CodeInvalidAPIKey   = 104002
	CodeInvalidStorage  = 102010
	CodeExpired         = 102021
	CodeInvalidSig      = 102024
)

func (c *Client) GetExchangeInfo(ctx context.Context) (*ExchangeInfo, error) {
	out, err := doJSON[ExchangeInfo](c, ctx, http.MethodGet, pathExchangeInfo, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAccount(ctx context.Context, owner string) (*Account, error) {
	q := url.Values{}
	q.Set("owner", owner)

	out, err := doJSON[Account](c, ctx, http.MethodGet, pathAccount, q, nil, nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserAPIKey requests the account's API key. The request is authenticated
// by an X-API-SIG signature from the account's layer-2 key.
func (c *Client) GetUserAPIKey(ctx context.Context, accountID uint32, key *eddsa.KeyPair) (string, error) {
	q := url.Values{}
	q.Set("accountId", strconv.FormatUint(uint64(accountID), 10))

	sig, err := SignRequest(key, http.MethodGet, c.endpoint(pathAPIKey), q)
	if err != nil {
		return "", err
	}

	out, err := doJSON[apiKeyResponse](c, ctx, http.MethodGet, pathAPIKey, q, map[string]string{headerAPISig: sig}, nil)
	if err != nil {
		return "", err
	}
	return out.APIKey, nil
}

func (c *Client) GetNextStorageID(ctx context.Context, apiKey string, accountID, sellTokenID uint32) (*StorageID, error) {
	q := url.Values{}
	q.Set("accountId", strconv.FormatUint(uint64(accountID), 10))
	q.Set("sellTokenId", strconv.FormatUint(uint64(sellTokenID), 10))

	out, err := doJSON[StorageID](c, ctx, http.MethodGet, pathStorageID, q, map[string]string{headerAPIKey: apiKey}, nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetNFTOffchainFee(ctx context.Context, apiKey string, accountID uint32, requestType int, tokenAddress string) (*OffchainFee, error) {
	q := url.Values{}
	q.Set("accountId", strconv.FormatUint(uint64(accountID), 10))
	q.Set("requestType", strconv.Itoa(requestType))
	q.Set("tokenAddress", tokenAddress)

	out, err := doJSON[OffchainFee](c, ctx, http.MethodGet, pathNFTFee, q, map[string]string{headerAPIKey: apiKey}, nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitNFTMint(ctx context.Context, apiKey string, req *NFTMintRequest, eddsaSignature string) (*NFTMintResponse, error) {
	body := SignedNFTMint{NFTMintRequest: *req, EddsaSignature: eddsaSignature}

	out, err := doJSON[NFTMintResponse](c, ctx, http.MethodPost, pathNFTMint, nil, map[string]string{headerAPIKey: apiKey}, body)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
