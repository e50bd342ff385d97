package ethereum

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const nftCreationPrefix = "NFT_CONTRACT_CREATION"

// EIP-1167 minimal proxy, split around the 20-byte implementation address.
var (
	proxyPrefix = common.FromHex("0x3d602d80600a3d3981f3363d3d373d3d3d363d73")
	proxySuffix = common.FromHex("0x5af43d82803e903d91602b57fd5bf3")
)

var ErrInvalidAddress = errors.New("invalid address")

// CounterfactualNFT identifies a not-yet-deployed NFT contract.
type CounterfactualNFT struct {
	Owner          string
	Factory        string
	Implementation string
	BaseURI        string
}

// ComputeNFTAddress returns the CREATE2 address the factory will deploy the
// owner's NFT contract to. It depends only on its inputs, never on chain state.
func ComputeNFTAddress(info CounterfactualNFT) (common.Address, error) {
	for _, f := range []struct{ name, addr string }{
		{"owner", info.Owner},
		{"factory", info.Factory},
		{"implementation", info.Implementation},
	} {
		if !common.IsHexAddress(f.addr) {
			return common.Address{}, fmt.Errorf("%w: %s %q", ErrInvalidAddress, f.name, f.addr)
		}
	}

	owner := common.HexToAddress(info.Owner)
	salt := crypto.Keccak256Hash([]byte(nftCreationPrefix), owner.Bytes(), []byte(info.BaseURI))

	initCode := make([]byte, 0, len(proxyPrefix)+common.AddressLength+len(proxySuffix))
	initCode = append(initCode, proxyPrefix...)
	initCode = append(initCode, common.HexToAddress(info.Implementation).Bytes()...)
	initCode = append(initCode, proxySuffix...)

	return crypto.CreateAddress2(common.HexToAddress(info.Factory), salt, crypto.Keccak256(initCode)), nil
}
