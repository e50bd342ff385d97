package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// A CIDv0 is base58(0x12 0x20 ‖ sha2-256 digest). The NFT id is the digest.
var cidV0Prefix = []byte{0x12, 0x20}

// DeriveNFTID maps a CIDv0 ("Qm…") to its 0x-prefixed 32-byte token id.
func DeriveNFTID(cid string) (string, error) {
	raw, err := base58.Decode(strings.TrimSpace(cid))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidContentID, err)
	}
	if len(raw) != 34 || raw[0] != cidV0Prefix[0] || raw[1] != cidV0Prefix[1] {
		return "", fmt.Errorf("%w: %q is not a sha2-256 CIDv0", ErrInvalidContentID, cid)
	}
	return "0x" + hex.EncodeToString(raw[2:]), nil
}

// DecodeNFTID is the inverse of DeriveNFTID.
func DecodeNFTID(nftID string) (string, error) {
	digest, err := hex.DecodeString(strings.TrimPrefix(nftID, "0x"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidContentID, err)
	}
	if len(digest) != 32 {
		return "", fmt.Errorf("%w: token id must be 32 bytes, got %d", ErrInvalidContentID, len(digest))
	}
	return base58.Encode(append(append([]byte{}, cidV0Prefix...), digest...)), nil
}
