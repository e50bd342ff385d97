package ethereum

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet is the owner's layer-1 key. It only signs messages.
type Wallet struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// NewWallet parses a hex private key, with or without 0x.
func NewWallet(privateKeyHex string) (*Wallet, error) {
	key := strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	privateKey, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return &Wallet{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

func (w *Wallet) Address() common.Address { return w.address }

// PersonalSign signs message with the "\x19Ethereum Signed Message:\n" prefix
// and returns R ‖ S ‖ V with V in {27, 28}. Signing is RFC 6979 deterministic.
func (w *Wallet) PersonalSign(message []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(message), w.privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSign, err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// RecoverPersonalSigner returns the address that produced a PersonalSign signature.
func RecoverPersonalSigner(message, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: bad signature length %d", ErrSign, len(sig))
	}
	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(accounts.TextHash(message), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrSign, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
