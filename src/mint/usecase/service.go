package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MMN3003/loopmint/src/config"
	"github.com/MMN3003/loopmint/src/logger"
	"github.com/MMN3003/loopmint/src/mint/domain"
)

var _ domain.MintUseCase = (*MintService)(nil)

type MintService struct {
	exchange domain.Exchange
	wallet   domain.WalletSigner
	logger   *logger.Logger
	cfg      *config.Config
	now      func() time.Time
}

type Option func(*MintService)

// WithClock replaces the clock used for the request's validity window.
func WithClock(now func() time.Time) Option {
	return func(s *MintService) { s.now = now }
}

func NewService(ex domain.Exchange, wallet domain.WalletSigner, logg *logger.Logger, cfg *config.Config, opts ...Option) *MintService {
	s := &MintService{
		exchange: ex,
		wallet:   wallet,
		logger:   logg,
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run mints one token for the configured owner. Steps run strictly in order;
// the first fatal failure ends the run and no step is retried.
func (s *MintService) Run(ctx context.Context, opts domain.MintOptions) (*domain.MintOutcome, error) {
	log := s.logger.WithFields(map[string]interface{}{
		"run_id":   uuid.NewString(),
		"chain_id": s.cfg.ChainID,
	})

	contentID := opts.ContentID
	if contentID == "" {
		contentID = s.cfg.CID0
	}

	// --- Step 1: Exchange and account
	info, err := s.exchange.GetExchangeInfo(ctx)
	if err != nil {
		log.Errorf("failed to fetch exchange info: %v", err)
		return nil, err
	}
	log.Dump("exchange info", info)
	if info.ChainID != s.cfg.ChainID {
		err = fmt.Errorf("%w: exchange is on chain %d, configured chain is %d",
			domain.ErrExchangeInfo, info.ChainID, s.cfg.ChainID)
		log.Errorf("chain id mismatch: %v", err)
		return nil, err
	}

	acc, err := s.exchange.GetAccount(ctx, s.cfg.OwnerAddress)
	if err != nil {
		log.Errorf("failed to fetch account for %s: %v", s.cfg.OwnerAddress, err)
		return nil, err
	}
	log = log.WithField("account_id", acc.AccountID)
	log.Dump("account", acc)

	// --- Step 2: Signing key and API session
	keys, err := DeriveKeyPair(s.wallet, NewKeyRequest(info, acc, s.cfg.ChainID))
	if err != nil {
		log.Errorf("failed to derive signing key: %v", err)
		return nil, err
	}
	if !matchesRegistered(keys, acc) {
		log.Warnf("derived key does not match the key registered for account %d", acc.AccountID)
	}

	cred, err := s.exchange.IssueAPIKey(ctx, acc.AccountID, keys.SecretKey)
	if err != nil {
		log.Errorf("failed to obtain api key for account %d: %v", acc.AccountID, err)
		return nil, err
	}
	if s.cfg.ChainID == config.ChainGoerli {
		log.Dump("auth material", map[string]any{"keyPair": keys, "apiKey": cred.APIKey})
	}

	// --- Step 3: Token identity
	token, err := TokenIdentityFor(acc.Owner, contentID, s.cfg.NFT)
	if err != nil {
		if !errors.Is(err, domain.ErrAddressComputationEmpty) || s.cfg.RequireTokenAddress {
			log.Errorf("failed to compute token identity: %v", err)
			return nil, err
		}
		log.Warnf("token address is empty, the exchange will pick the contract: %v", err)
	}
	log.Infof("token address: %q nft id: %s", token.TokenAddress, token.NFTID)

	// --- Step 4: Storage id, fee, request
	storageID, err := s.exchange.NextStorageID(ctx, cred, domain.SellTokenIDNone)
	if err != nil {
		log.Errorf("failed to allocate storage id: %v", err)
		return nil, err
	}

	quote, err := s.quoteFee(ctx, log, cred, token.TokenAddress)
	if err != nil {
		return nil, err
	}

	req := BuildMintRequest(MintParams{
		Exchange:  info,
		Account:   acc,
		Token:     token,
		StorageID: storageID,
		Fee:       quote,
		IssuedAt:  s.now(),
	})
	log.Dump("mint request", req)

	sig, err := s.exchange.SignNFTMint(req, keys.SecretKey)
	if err != nil {
		log.Errorf("failed to sign mint request: %v", err)
		return nil, err
	}

	outcome := &domain.MintOutcome{TokenAddress: token.TokenAddress, Request: req, Signature: sig}
	if opts.DryRun {
		log.Infof("dry run: storage id %d signed, not submitted", storageID)
		return outcome, nil
	}

	// --- Step 5: Submit
	outcome.Result, err = s.submit(ctx, log, cred, req, sig)
	if err != nil {
		return outcome, err
	}
	log.Infof("mint accepted: hash=%s nftTokenId=%d status=%s", outcome.Result.Hash, outcome.Result.NFTTokenID, outcome.Result.Status)
	log.Dump("mint result", outcome.Result)

	settle(ctx, s.cfg.SettleDelay)
	return outcome, nil
}

// quoteFee falls back to FallbackMaxFee only when the quote has no ETH entry.
// A refused or failed fee request aborts the run.
func (s *MintService) quoteFee(ctx context.Context, log *logger.Logger, cred *domain.APICredential, tokenAddress string) (domain.FeeQuote, error) {
	fees, err := s.exchange.MintFees(ctx, cred, tokenAddress, domain.FeeRequestTypeMint)
	if err != nil {
		log.Errorf("failed to fetch fee quote: %v", err)
		return domain.FeeQuote{}, err
	}

	quote, err := SelectFee(fees)
	if err == nil {
		return quote, nil
	}

	quote = domain.FallbackFeeQuote()
	log.Warnf("fee quote unavailable (%v): using %s wei %s as a conservative ceiling, not a quote",
		err, quote.FeeAmount.String(), quote.Currency)
	return quote, nil
}

// settle gives the exchange a moment before the process exits.
func settle(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
