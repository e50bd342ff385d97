package exchange

import (
	"context"
	"errors"
	"fmt"

	"github.com/MMN3003/loopmint/src/Infrastructure/eddsa"
	"github.com/MMN3003/loopmint/src/Infrastructure/loopring"
	"github.com/MMN3003/loopmint/src/mint/domain"
	"github.com/shopspring/decimal"
)

var _ domain.Exchange = (*LoopringPort)(nil)

// init loopring port
func NewLoopringPort(client *loopring.Client) *LoopringPort {
	return &LoopringPort{client: client}
}

// LoopringPort maps the REST client onto the mint flow's exchange port.
type LoopringPort struct {
	client *loopring.Client
}

func (p *LoopringPort) GetExchangeInfo(ctx context.Context) (*domain.ExchangeInfo, error) {
	info, err := p.client.GetExchangeInfo(ctx)
	if err != nil {
		return nil, wrap(domain.ErrExchangeInfo, "exchange info", err)
	}
	if info.ExchangeAddress == "" {
		return nil, fmt.Errorf("%w: empty exchange address", domain.ErrExchangeInfo)
	}
	return &domain.ExchangeInfo{
		ExchangeAddress: info.ExchangeAddress,
		ChainID:         info.ChainID,
	}, nil
}

func (p *LoopringPort) GetAccount(ctx context.Context, owner string) (*domain.Account, error) {
	acc, err := p.client.GetAccount(ctx, owner)
	if err != nil {
		var apiErr *loopring.APIError
		if errors.As(err, &apiErr) && apiErr.Code == loopring.CodeAccountNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, owner)
		}
		return nil, wrap(domain.ErrAccountNotFound, "account "+owner, err)
	}
	return &domain.Account{
		Owner:      acc.Owner,
		AccountID:  acc.AccountID,
		Nonce:      acc.Nonce,
		KeySeed:    acc.KeySeed,
		PublicKeyX: acc.PublicKey.X,
		PublicKeyY: acc.PublicKey.Y,
	}, nil
}

func (p *LoopringPort) IssueAPIKey(ctx context.Context, accountID uint32, secretKey string) (*domain.APICredential, error) {
	key, err := eddsa.ParseSecret(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyDerivation, err)
	}

	apiKey, err := p.client.GetUserAPIKey(ctx, accountID, key)
	if err != nil {
		return nil, wrap(domain.ErrAuthRejected, "api key", err)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: empty api key", domain.ErrAuthRejected)
	}
	return &domain.APICredential{AccountID: accountID, APIKey: apiKey}, nil
}

func (p *LoopringPort) NextStorageID(ctx context.Context, cred *domain.APICredential, sellTokenID uint32) (domain.SequenceID, error) {
	id, err := p.client.GetNextStorageID(ctx, cred.APIKey, cred.AccountID, sellTokenID)
	if err != nil {
		return 0, wrap(domain.ErrSequenceAllocationFailed, "storage id", err)
	}
	return domain.SequenceID(id.OffchainID), nil
}

func (p *LoopringPort) MintFees(ctx context.Context, cred *domain.APICredential, tokenAddress string, requestType int) (map[string]decimal.Decimal, error) {
	fee, err := p.client.GetNFTOffchainFee(ctx, cred.APIKey, cred.AccountID, requestType, tokenAddress)
	if err != nil {
		return nil, wrap(domain.ErrFeeRequestRejected, "offchain fee", err)
	}

	out := make(map[string]decimal.Decimal, len(fee.Fees))
	for _, f := range fee.Fees {
		amount, err := decimal.NewFromString(f.Fee)
		if err != nil {
			// unparsable entries are treated as absent
			continue
		}
		out[f.Token] = amount
	}
	return out, nil
}

func (p *LoopringPort) SignNFTMint(req *domain.MintRequest, secretKey string) (string, error) {
	key, err := eddsa.ParseSecret(secretKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrKeyDerivation, err)
	}
	return loopring.SignNFTMint(key, toWire(req))
}

// SubmitNFTMint returns exchange rejections as a result, not an error.
func (p *LoopringPort) SubmitNFTMint(ctx context.Context, cred *domain.APICredential, req *domain.MintRequest, signature string) (*domain.MintResult, error) {
	res, err := p.client.SubmitNFTMint(ctx, cred.APIKey, toWire(req), signature)
	if err != nil {
		var apiErr *loopring.APIError
		if errors.As(err, &apiErr) {
			code := apiErr.Code
			if code == domain.StatusSuccess {
				code = apiErr.HTTPStatus
			}
			return &domain.MintResult{StatusCode: code, Message: apiErr.Message}, nil
		}
		return nil, wrap(domain.ErrTransport, "nft mint", err)
	}

	return &domain.MintResult{
		StatusCode: domain.StatusSuccess,
		Hash:       res.Hash,
		NFTTokenID: res.NFTTokenID,
		NFTData:    res.NFTData,
		Status:     res.Status,
	}, nil
}

func toWire(req *domain.MintRequest) *loopring.NFTMintRequest {
	return &loopring.NFTMintRequest{
		Exchange:          req.Exchange,
		MinterID:          req.MinterID,
		MinterAddress:     req.MinterAddress,
		ToAccountID:       req.ToAccountID,
		ToAddress:         req.ToAddress,
		NFTType:           req.NFTType,
		TokenAddress:      req.TokenAddress,
		NFTID:             req.NFTID,
		Amount:            req.Amount,
		ValidUntil:        req.ValidUntil,
		StorageID:         uint32(req.StorageID),
		MaxFee:            loopring.MaxFee{TokenID: req.MaxFee.TokenID, Amount: req.MaxFee.Amount},
		RoyaltyPercentage: req.RoyaltyPercentage,
		ForceToMint:       req.ForceToMint,
	}
}

// wrap tags err with kind, or with ErrTransport when the exchange was never reached.
func wrap(kind error, op string, err error) error {
	if errors.Is(err, loopring.ErrTransport) {
		return fmt.Errorf("%w: %s: %v", domain.ErrTransport, op, err)
	}
	return fmt.Errorf("%w: %s: %v", kind, op, err)
}
