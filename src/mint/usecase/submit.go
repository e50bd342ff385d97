package usecase

import (
	"context"

	"github.com/MMN3003/loopmint/src/logger"
	"github.com/MMN3003/loopmint/src/mint/domain"
)

// submit sends the signed request exactly once. A non-success status becomes
// a MintRejectedError carrying the exchange's code and message unchanged.
func (s *MintService) submit(ctx context.Context, log *logger.Logger, cred *domain.APICredential, req *domain.MintRequest, sig string) (*domain.MintResult, error) {
	res, err := s.exchange.SubmitNFTMint(ctx, cred, req, sig)
	if err != nil {
		log.Errorf("mint submission failed: %v", err)
		return nil, err
	}

	if res.StatusCode != domain.StatusSuccess {
		log.Errorf("mint rejected: code=%d message=%s", res.StatusCode, res.Message)
		return res, &domain.MintRejectedError{StatusCode: res.StatusCode, Message: res.Message}
	}
	return res, nil
}
