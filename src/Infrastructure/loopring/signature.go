package loopring

import (
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/MMN3003/loopmint/src/Infrastructure/eddsa"
)

// Poseidon instances the exchange hashes mint payloads with.
var (
	NFTDataParams = eddsa.PoseidonParams{T: 7, FullRounds: 6, PartialRounds: 52}
	NFTMintParams = eddsa.PoseidonParams{T: 10, FullRounds: 6, PartialRounds: 53}
)

// RequestSignatureBase is the string an X-API-SIG signature covers:
// METHOD&urlencode(scheme://host/path)&urlencode(sorted query).
func RequestSignatureBase(method string, endpoint *url.URL, q url.Values) string {
	u := url.URL{Scheme: endpoint.Scheme, Host: endpoint.Host, Path: endpoint.Path}
	return strings.ToUpper(method) + "&" + url.QueryEscape(u.String()) + "&" + url.QueryEscape(q.Encode())
}

func SignRequest(key *eddsa.KeyPair, method string, endpoint *url.URL, q url.Values) (string, error) {
	msg := eddsa.FieldFromSHA256([]byte(RequestSignatureBase(method, endpoint, q)))
	sig, err := key.Sign(msg)
	if err != nil {
		return "", fmt.Errorf("sign request: %w", err)
	}
	return sig.Hex(), nil
}

// VerifyRequest checks an X-API-SIG value against a registered public key.
func VerifyRequest(pubX, pubY *big.Int, method string, endpoint *url.URL, q url.Values, sigHex string) bool {
	sig, err := eddsa.ParseSignature(sigHex)
	if err != nil {
		return false
	}
	msg := eddsa.FieldFromSHA256([]byte(RequestSignatureBase(method, endpoint, q)))
	return eddsa.Verify(pubX, pubY, msg, sig)
}

// NFTData binds the token's identity: minter, type, contract, id halves and royalty.
func NFTData(req *NFTMintRequest) (*big.Int, error) {
	minter, err := fieldElement(req.MinterAddress)
	if err != nil {
		return nil, fmt.Errorf("minterAddress: %w", err)
	}
	token := big.NewInt(0)
	if req.TokenAddress != "" {
		if token, err = fieldElement(req.TokenAddress); err != nil {
			return nil, fmt.Errorf("tokenAddress: %w", err)
		}
	}
	id, ok := new(big.Int).SetString(strings.TrimPrefix(req.NFTID, "0x"), 16)
	if !ok {
		return nil, fmt.Errorf("nftId: not hex: %q", req.NFTID)
	}
	lo, hi := eddsa.Split128(id)

	return eddsa.HashPoseidon(NFTDataParams,
		minter,
		big.NewInt(int64(req.NFTType)),
		token,
		lo,
		hi,
		big.NewInt(int64(req.RoyaltyPercentage)),
	)
}

// NFTMintHash is the message an NFT mint's eddsaSignature covers.
func NFTMintHash(req *NFTMintRequest) (*big.Int, error) {
	exchange, err := fieldElement(req.Exchange)
	if err != nil {
		return nil, fmt.Errorf("exchange: %w", err)
	}
	nftData, err := NFTData(req)
	if err != nil {
		return nil, err
	}
	amount, err := fieldElement(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}
	fee, err := fieldElement(req.MaxFee.Amount)
	if err != nil {
		return nil, fmt.Errorf("maxFee.amount: %w", err)
	}

	return eddsa.HashPoseidon(NFTMintParams,
		exchange,
		new(big.Int).SetUint64(uint64(req.MinterID)),
		new(big.Int).SetUint64(uint64(req.ToAccountID)),
		nftData,
		amount,
		new(big.Int).SetUint64(uint64(req.MaxFee.TokenID)),
		fee,
		big.NewInt(req.ValidUntil),
		new(big.Int).SetUint64(uint64(req.StorageID)),
	)
}

func SignNFTMint(key *eddsa.KeyPair, req *NFTMintRequest) (string, error) {
	h, err := NFTMintHash(req)
	if err != nil {
		return "", err
	}
	sig, err := key.Sign(h)
	if err != nil {
		return "", fmt.Errorf("sign nft mint: %w", err)
	}
	return sig.Hex(), nil
}

func VerifyNFTMint(pubX, pubY *big.Int, req *NFTMintRequest, sigHex string) bool {
	sig, err := eddsa.ParseSignature(sigHex)
	if err != nil {
		return false
	}
	h, err := NFTMintHash(req)
	if err != nil {
		return false
	}
	return eddsa.Verify(pubX, pubY, h, sig)
}

// fieldElement parses 0x-hex or decimal text into a field element.
func fieldElement(s string) (*big.Int, error) {
	var (
		v  *big.Int
		ok bool
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, ok = new(big.Int).SetString(s[2:], 16)
	} else {
		v, ok = new(big.Int).SetString(s, 10)
	}
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	if v.Cmp(eddsa.FieldModulus()) >= 0 {
		return nil, fmt.Errorf("out of field: %q", s)
	}
	return v, nil
}
