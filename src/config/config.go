package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ChainMainnet int64 = 1
	ChainGoerli  int64 = 5
)

var (
	ErrMissingEnvVars   = errors.New("missing required environment variables")
	ErrUnsupportedChain = errors.New("unsupported chain id")
)

type Config struct {
	Env                 string
	Verbose             bool
	ChainID             int64
	OwnerAddress        string
	PrivateKey          string
	CID0                string
	HTTPTimeout         time.Duration
	SettleDelay         time.Duration
	RequireTokenAddress bool
	Loopring            LoopringConfig
	Ethereum            EthereumConfig
	NFT                 NFTConfig
}

type LoopringConfig struct {
	BaseURL string
}

type EthereumConfig struct {
	RPCURL          string
	InfuraProjectID string
}

type NFTConfig struct {
	FactoryAddress        string
	ImplementationAddress string
	BaseURI               string
}

// chainDefaults holds the per-deployment values selected by CHAIN_ID.
type chainDefaults struct {
	infuraNetwork     string
	loopringAPI       string
	nftFactory        string
	nftImplementation string
}

var chains = map[int64]chainDefaults{
	ChainMainnet: {
		infuraNetwork:     "mainnet",
		loopringAPI:       "https://api3.loopring.io",
		nftFactory:        "0xc852aC7aAe4b0f0a0Deb9e8A391ebA2047d80026",
		nftImplementation: "0xB4Ef71AA8e5b9e71F6Ee3E06aA3A5d5fFA2E4C88",
	},
	ChainGoerli: {
		infuraNetwork:     "goerli",
		loopringAPI:       "https://uat2.loopring.io",
		nftFactory:        "0x25315F9878BBa5a6c7d0e1AE8dAc3f3Db6bC8c16",
		nftImplementation: "0xf1e9bf82A98bDAE4b8ad4BB6A1bC87F3D6fC5A4C",
	},
}

var truthy = regexp.MustCompile(`(?i)^\s*(true|1|on)\s*$`)

// LoadFromEnv reads configuration from environment variables with fallback defaults.
// It also loads `.env` if present (for local development).
func LoadFromEnv() (*Config, error) {
	// Load .env if exists, ignore error if no file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on environment variables")
	}

	chainID, err := strconv.ParseInt(strings.TrimSpace(getEnv("CHAIN_ID", "5")), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CHAIN_ID: %w", err)
	}
	defaults, ok := chains[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT duration: %w", err)
	}
	settle, err := time.ParseDuration(getEnv("SETTLE_DELAY", "250ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid SETTLE_DELAY duration: %w", err)
	}

	return &Config{
		Env:                 getEnv("ENV", "dev"),
		Verbose:             truthy.MatchString(os.Getenv("VERBOSE")),
		ChainID:             chainID,
		OwnerAddress:        os.Getenv("ETH_ACCOUNT_ADDRESS"),
		PrivateKey:          os.Getenv("ETH_ACCOUNT_PRIVATE_KEY"),
		CID0:                os.Getenv("CID0"),
		HTTPTimeout:         timeout,
		SettleDelay:         settle,
		RequireTokenAddress: truthy.MatchString(os.Getenv("REQUIRE_TOKEN_ADDRESS")),
		Loopring: LoopringConfig{
			BaseURL: getEnv("LOOPRING_API_URL", defaults.loopringAPI),
		},
		Ethereum: EthereumConfig{
			RPCURL:          os.Getenv("ETH_RPC_URL"),
			InfuraProjectID: os.Getenv("INFURA_PROJECT_ID"),
		},
		NFT: NFTConfig{
			FactoryAddress:        getEnv("NFT_FACTORY_ADDRESS", defaults.nftFactory),
			ImplementationAddress: getEnv("NFT_IMPLEMENTATION_ADDRESS", defaults.nftImplementation),
			BaseURI:               os.Getenv("NFT_BASE_URI"),
		},
	}, nil
}

// RPCURL returns the chain RPC endpoint, building an Infura URL when only a
// project id is configured. Empty means no RPC provider.
func (c *Config) RPCURL() string {
	if c.Ethereum.RPCURL != "" {
		return c.Ethereum.RPCURL
	}
	if c.Ethereum.InfuraProjectID == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.infura.io/v3/%s", chains[c.ChainID].infuraNetwork, c.Ethereum.InfuraProjectID)
}

// RequireWallet checks the settings a mint run cannot start without.
func (c *Config) RequireWallet() error {
	var missing []string
	if c.OwnerAddress == "" {
		missing = append(missing, "ETH_ACCOUNT_ADDRESS")
	}
	if c.PrivateKey == "" {
		missing = append(missing, "ETH_ACCOUNT_PRIVATE_KEY")
	}
	if c.CID0 == "" {
		missing = append(missing, "CID0")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnvVars, strings.Join(missing, ", "))
	}
	return nil
}

// helper to get env with default fallback
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
