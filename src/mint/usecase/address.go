package usecase

import (
	"fmt"

	"github.com/MMN3003/loopmint/src/Infrastructure/ethereum"
	"github.com/MMN3003/loopmint/src/config"
	"github.com/MMN3003/loopmint/src/mint/domain"
)

// ComputeTokenAddress returns the owner's counterfactual NFT contract address.
// On bad input it returns EmptyTokenAddress with ErrAddressComputationEmpty;
// callers decide whether that is fatal.
func ComputeTokenAddress(owner string, nft config.NFTConfig) (string, error) {
	addr, err := ethereum.ComputeNFTAddress(ethereum.CounterfactualNFT{
		Owner:          owner,
		Factory:        nft.FactoryAddress,
		Implementation: nft.ImplementationAddress,
		BaseURI:        nft.BaseURI,
	})
	if err != nil {
		return domain.EmptyTokenAddress, fmt.Errorf("%w: %v", domain.ErrAddressComputationEmpty, err)
	}
	return addr.Hex(), nil
}

// TokenIdentityFor derives the full token identity for one content id.
func TokenIdentityFor(owner, contentID string, nft config.NFTConfig) (domain.TokenIdentity, error) {
	nftID, err := domain.DeriveNFTID(contentID)
	if err != nil {
		return domain.TokenIdentity{}, err
	}

	id := domain.TokenIdentity{
		FactoryAddress: nft.FactoryAddress,
		OwnerAddress:   owner,
		ContentID:      contentID,
		NFTID:          nftID,
	}
	id.TokenAddress, err = ComputeTokenAddress(owner, nft)
	return id, err
}
