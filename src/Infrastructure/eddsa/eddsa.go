// Package eddsa implements the exchange's layer-2 signing key: EdDSA over the
// Baby-Jubjub curve with Poseidon (see PoseidonParams) as the challenge hash.
//
// Notes:
//   - Keys are scalars modulo the Baby-Jubjub subgroup order; public keys are
//     Base8 multiples of the scalar.
//   - Messages are field elements; callers reduce larger inputs with FieldFromSHA256
//     or split them (see Split128).
//   - Hex encodings are 0x-prefixed and zero-padded to 32 bytes per element.
package eddsa

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/iden3/go-iden3-crypto/babyjub"
	"github.com/iden3/go-iden3-crypto/constants"
)

var (
	ErrInvalidSecret    = errors.New("invalid eddsa secret key")
	ErrInvalidSignature = errors.New("invalid eddsa signature encoding")
	ErrMessageRange     = errors.New("message is not a field element")
)

// KeyPair is a Baby-Jubjub signing key and its public point.
type KeyPair struct {
	Secret  *big.Int
	PublicX *big.Int
	PublicY *big.Int
}

// Signature is (R, S) with R a curve point.
type Signature struct {
	RX *big.Int
	RY *big.Int
	S  *big.Int
}

// FieldModulus is the SNARK scalar field every hashed message lives in.
func FieldModulus() *big.Int {
	return new(big.Int).Set(constants.Q)
}

// KeyPairFromSeed reads seed as a little-endian integer and reduces it modulo
// the subgroup order. The same seed always yields the same pair.
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	secret := new(big.Int).SetBytes(reverse(seed))
	secret.Mod(secret, babyjub.SubOrder)
	if secret.Sign() == 0 {
		return nil, fmt.Errorf("%w: seed reduces to zero", ErrInvalidSecret)
	}
	return keyPairFromScalar(secret), nil
}

// ParseSecret rebuilds a KeyPair from its 0x-hex secret.
func ParseSecret(secretHex string) (*KeyPair, error) {
	secret, ok := new(big.Int).SetString(strings.TrimPrefix(secretHex, "0x"), 16)
	if !ok {
		return nil, fmt.Errorf("%w: not hex", ErrInvalidSecret)
	}
	if secret.Sign() <= 0 || secret.Cmp(babyjub.SubOrder) >= 0 {
		return nil, fmt.Errorf("%w: out of range", ErrInvalidSecret)
	}
	return keyPairFromScalar(secret), nil
}

func keyPairFromScalar(secret *big.Int) *KeyPair {
	pub := babyjub.NewPoint().Mul(secret, babyjub.B8)
	return &KeyPair{Secret: secret, PublicX: pub.X, PublicY: pub.Y}
}

func (k *KeyPair) SecretHex() string  { return Hex(k.Secret) }
func (k *KeyPair) PublicXHex() string { return Hex(k.PublicX) }
func (k *KeyPair) PublicYHex() string { return Hex(k.PublicY) }

// Sign produces a deterministic signature: the nonce is derived from the
// secret and the message, so signing the same message twice gives the same bytes.
func (k *KeyPair) Sign(msg *big.Int) (*Signature, error) {
	if msg.Sign() < 0 || msg.Cmp(constants.Q) >= 0 {
		return nil, ErrMessageRange
	}

	h := sha512.New()
	h.Write(pad32(k.Secret))
	h.Write(pad32(msg))
	r := new(big.Int).SetBytes(h.Sum(nil))
	r.Mod(r, babyjub.SubOrder)

	R := babyjub.NewPoint().Mul(r, babyjub.B8)
	hm, err := HashPoseidon(ChallengeParams, R.X, R.Y, k.PublicX, k.PublicY, msg)
	if err != nil {
		return nil, fmt.Errorf("poseidon challenge: %w", err)
	}

	s := new(big.Int).Mul(hm, k.Secret)
	s.Add(s, r)
	s.Mod(s, babyjub.SubOrder)

	return &Signature{RX: R.X, RY: R.Y, S: s}, nil
}

// Verify checks B8·S == R + A·H(R, A, msg).
func Verify(pubX, pubY, msg *big.Int, sig *Signature) bool {
	if sig == nil || sig.S.Cmp(babyjub.SubOrder) >= 0 {
		return false
	}
	R := &babyjub.Point{X: sig.RX, Y: sig.RY}
	A := &babyjub.Point{X: pubX, Y: pubY}
	if !R.InCurve() || !A.InCurve() {
		return false
	}
	hm, err := HashPoseidon(ChallengeParams, R.X, R.Y, A.X, A.Y, msg)
	if err != nil {
		return false
	}

	left := babyjub.NewPoint().Mul(sig.S, babyjub.B8)
	ah := babyjub.NewPoint().Mul(hm, A)
	right := R.Projective().Add(R.Projective(), ah.Projective()).Affine()

	return left.X.Cmp(right.X) == 0 && left.Y.Cmp(right.Y) == 0
}

// Hex encodes the signature as 0x ‖ Rx ‖ Ry ‖ S, 32 bytes each.
func (s *Signature) Hex() string {
	return "0x" + fmt.Sprintf("%064x%064x%064x", s.RX, s.RY, s.S)
}

// ParseSignature is the inverse of Signature.Hex.
func ParseSignature(sigHex string) (*Signature, error) {
	raw := strings.TrimPrefix(sigHex, "0x")
	if len(raw) != 192 {
		return nil, fmt.Errorf("%w: want 192 hex chars, got %d", ErrInvalidSignature, len(raw))
	}
	parts := make([]*big.Int, 3)
	for i := range parts {
		v, ok := new(big.Int).SetString(raw[i*64:(i+1)*64], 16)
		if !ok {
			return nil, fmt.Errorf("%w: not hex", ErrInvalidSignature)
		}
		parts[i] = v
	}
	return &Signature{RX: parts[0], RY: parts[1], S: parts[2]}, nil
}

// FieldFromSHA256 maps arbitrary bytes into the field.
func FieldFromSHA256(data []byte) *big.Int {
	sum := sha256.Sum256(data)
	v := new(big.Int).SetBytes(sum[:])
	return v.Mod(v, constants.Q)
}

// Split128 returns the low and high 128-bit halves of v.
func Split128(v *big.Int) (lo, hi *big.Int) {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	lo = new(big.Int).And(v, mask)
	hi = new(big.Int).Rsh(v, 128)
	return lo, hi
}

// Hex renders v as 0x-prefixed, 32-byte zero-padded hex.
func Hex(v *big.Int) string {
	return fmt.Sprintf("0x%064x", v)
}

func pad32(v *big.Int) []byte {
	out := make([]byte, 32)
	v.FillBytes(out)
	return out
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
