// Package cli is the loopmint command tree.
package cli

import (
	"context"
	"fmt"
	"math/big"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/MMN3003/loopmint/src/Infrastructure/ethereum"
	"github.com/MMN3003/loopmint/src/Infrastructure/loopring"
	"github.com/MMN3003/loopmint/src/config"
	"github.com/MMN3003/loopmint/src/logger"
	"github.com/MMN3003/loopmint/src/mint/adapter/exchange"
	"github.com/MMN3003/loopmint/src/mint/domain"
	"github.com/MMN3003/loopmint/src/mint/usecase"
)

// Version is stamped at build time with -ldflags "-X .../src/cli.Version=...".
var Version = "dev"

// MinterFactory wires a mint use case from configuration.
type MinterFactory func(ctx context.Context, cfg *config.Config, logg *logger.Logger) (domain.MintUseCase, error)

type App struct {
	Config    *config.Config
	Logger    *logger.Logger
	NewMinter MinterFactory
}

func NewApp(cfg *config.Config, logg *logger.Logger) *App {
	return &App{Config: cfg, Logger: logg, NewMinter: BuildMinter}
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "loopmint",
		Short:         "Mint an NFT on the Loopring layer-2 exchange",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		newMintCmd(app),
		newAddressCmd(app),
		newTokenIDCmd(),
	)
	return root
}

// BuildMinter connects the wallet, the optional chain RPC check and the
// exchange client.
func BuildMinter(ctx context.Context, cfg *config.Config, logg *logger.Logger) (domain.MintUseCase, error) {
	if err := cfg.RequireWallet(); err != nil {
		return nil, err
	}

	wallet, err := ethereum.NewWallet(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	if url := cfg.RPCURL(); url != "" {
		if err := verifyChain(ctx, url, cfg.ChainID); err != nil {
			return nil, err
		}
		logg.Infof("chain %d confirmed by rpc provider", cfg.ChainID)
	}

	client, err := newExchangeClient(cfg, logg)
	if err != nil {
		return nil, err
	}

	return usecase.NewService(exchange.NewLoopringPort(client), wallet, logg, cfg), nil
}

func newExchangeClient(cfg *config.Config, logg *logger.Logger) (*loopring.Client, error) {
	client, err := loopring.NewClient(cfg.Loopring.BaseURL,
		loopring.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		loopring.WithUserAgent("loopmint/"+Version),
		loopring.WithLogger(logg.Zerolog()),
	)
	if err != nil {
		return nil, fmt.Errorf("loopring client: %w", err)
	}
	return client, nil
}

func verifyChain(ctx context.Context, url string, chainID int64) error {
	ec, err := ethereum.NewEthereumClient(ctx, ethereum.Config{RPCURL: url, ChainID: big.NewInt(chainID)})
	if err != nil {
		return err
	}
	defer ec.Close()
	return ec.VerifyChain(ctx)
}
