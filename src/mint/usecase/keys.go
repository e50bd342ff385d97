package usecase

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/MMN3003/loopmint/src/Infrastructure/eddsa"
	"github.com/MMN3003/loopmint/src/Infrastructure/ethereum"
	"github.com/MMN3003/loopmint/src/mint/domain"
)

const keySeedTemplate = "Sign this message to access Loopring Exchange: %s with key nonce: %d"

// KeyRequest is everything that determines a layer-2 key.
type KeyRequest struct {
	Owner      string
	Seed       string
	WalletType string
	ChainID    int64
}

// KeySeed is the account's stored seed, or the standard message for the
// key that was registered at nonce-1.
func KeySeed(exchangeAddress string, acc *domain.Account) string {
	if acc.KeySeed != "" {
		return acc.KeySeed
	}
	return fmt.Sprintf(keySeedTemplate, exchangeAddress, int64(acc.Nonce)-1)
}

// NewKeyRequest builds the derivation input for an account on an exchange.
func NewKeyRequest(info *domain.ExchangeInfo, acc *domain.Account, chainID int64) KeyRequest {
	return KeyRequest{
		Owner:      acc.Owner,
		Seed:       KeySeed(info.ExchangeAddress, acc),
		WalletType: domain.WalletTypeUnknown,
		ChainID:    chainID,
	}
}

// DeriveKeyPair signs the seed with the owner's wallet and turns the
// signature into an EdDSA key. Same wallet and request, same key.
func DeriveKeyPair(wallet domain.WalletSigner, req KeyRequest) (*domain.SigningKeyPair, error) {
	if req.WalletType != domain.WalletTypeUnknown {
		return nil, fmt.Errorf("%w: unsupported wallet type %q", domain.ErrKeyDerivation, req.WalletType)
	}
	if !strings.EqualFold(wallet.Address().Hex(), req.Owner) {
		return nil, fmt.Errorf("%w: wallet %s is not the account owner %s",
			domain.ErrKeyDerivation, wallet.Address().Hex(), req.Owner)
	}

	sig, err := wallet.PersonalSign([]byte(req.Seed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyDerivation, err)
	}
	// a key derived from someone else's signature would never match the account
	signer, err := ethereum.RecoverPersonalSigner([]byte(req.Seed), sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyDerivation, err)
	}
	if !strings.EqualFold(signer.Hex(), req.Owner) {
		return nil, fmt.Errorf("%w: seed signed by %s, not the account owner %s",
			domain.ErrKeyDerivation, signer.Hex(), req.Owner)
	}

	digest := sha256.Sum256(sig)
	kp, err := eddsa.KeyPairFromSeed(digest[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyDerivation, err)
	}

	return &domain.SigningKeyPair{
		SecretKey:  kp.SecretHex(),
		PublicKeyX: kp.PublicXHex(),
		PublicKeyY: kp.PublicYHex(),
	}, nil
}

// matchesRegistered reports whether keys is the account's registered key.
// Accounts that never set a key report no key and always mismatch.
func matchesRegistered(keys *domain.SigningKeyPair, acc *domain.Account) bool {
	return sameHex(keys.PublicKeyX, acc.PublicKeyX) && sameHex(keys.PublicKeyY, acc.PublicKeyY)
}

func sameHex(a, b string) bool {
	trim := func(s string) string { return strings.TrimLeft(strings.TrimPrefix(strings.ToLower(s), "0x"), "0") }
	return trim(a) == trim(b) && trim(a) != ""
}
