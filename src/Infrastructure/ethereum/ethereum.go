package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
)

// Errors
var (
	ErrMissingEnvVars    = errors.New("missing required environment variables")
	ErrConnectNetwork    = errors.New("failed to connect to network")
	ErrInvalidPrivateKey = errors.New("failed to parse private key")
	ErrChainMismatch     = errors.New("rpc provider is on a different chain")
	ErrSign              = errors.New("failed to sign message")
)

// Config holds Ethereum client config
type Config struct {
	RPCURL  string
	ChainID *big.Int
}

// EthereumClient is the read-only view of the chain this tool needs: the
// provider's network identity. No transactions are sent from here.
type EthereumClient struct {
	client *ethclient.Client
	config Config
}

// NewEthereumClient dials the provider.
func NewEthereumClient(ctx context.Context, config Config) (*EthereumClient, error) {
	if config.RPCURL == "" {
		return nil, fmt.Errorf("%w: RPC_URL", ErrMissingEnvVars)
	}
	client, err := ethclient.DialContext(ctx, config.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectNetwork, err)
	}
	return &EthereumClient{client: client, config: config}, nil
}

func (ec *EthereumClient) Close() { ec.client.Close() }

// ChainID asks the provider which network it serves.
func (ec *EthereumClient) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := ec.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectNetwork, err)
	}
	return id, nil
}

// VerifyChain fails when the provider's chain differs from the configured one.
func (ec *EthereumClient) VerifyChain(ctx context.Context) error {
	id, err := ec.ChainID(ctx)
	if err != nil {
		return err
	}
	if ec.config.ChainID != nil && id.Cmp(ec.config.ChainID) != 0 {
		return fmt.Errorf("%w: provider=%s configured=%s", ErrChainMismatch, id, ec.config.ChainID)
	}
	return nil
}
