package config

import (
	"crypto/ecdsa"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/estatemint/goapi/domain"
)

const (
	defaultOracleTimeout       = 10 * time.Second
	defaultConfirmationTimeout = 2 * time.Minute
	defaultPollInterval        = 2 * time.Second
	defaultResourceTimeout     = 30 * time.Second
	defaultIpfsGateway         = "https://ipfs.io/ipfs"
)

// Config is built once at startup and passed into component
// constructors. No component reads process-wide variables directly.
type Config struct {
	ServerAddress string

	RpcUrl              string
	ChainId             *big.Int
	PrivateKey          *ecdsa.PrivateKey
	ContractAddress     common.Address
	Recipient           common.Address
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration

	OracleUrl     string
	OracleTimeout time.Duration

	PinataApiKey    string
	PinataApiSecret string

	IpfsNodeUrl     string
	IpfsGateway     string
	ResourceTimeout time.Duration
}

// Load reads the already-initialized viper config into a validated
// Config. Any missing or malformed required value yields an error
// wrapping domain.ErrInvalidConfig instead of aborting the process, so
// startup validation is testable.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddress:       viper.GetString("server.address"),
		RpcUrl:              viper.GetString("chain.rpcUrl"),
		ConfirmationTimeout: viper.GetDuration("chain.confirmationTimeout"),
		PollInterval:        viper.GetDuration("chain.pollInterval"),
		OracleUrl:           viper.GetString("oracle.url"),
		OracleTimeout:       viper.GetDuration("oracle.timeout"),
		PinataApiKey:        viper.GetString("pinata.apiKey"),
		PinataApiSecret:     viper.GetString("pinata.apiSecret"),
		IpfsNodeUrl:         viper.GetString("ipfs.nodeUrl"),
		IpfsGateway:         viper.GetString("ipfs.gateway"),
		ResourceTimeout:     viper.GetDuration("ipfs.timeout"),
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = ":3000"
	}

	if err := validateHttpUrl(cfg.RpcUrl); err != nil {
		return nil, xerrors.Errorf("chain.rpcUrl: %s: %w", err, domain.ErrInvalidConfig)
	}
	if err := validateHttpUrl(cfg.OracleUrl); err != nil {
		return nil, xerrors.Errorf("oracle.url: %s: %w", err, domain.ErrInvalidConfig)
	}

	chainId := viper.GetInt64("chain.chainId")
	if chainId <= 0 {
		return nil, xerrors.Errorf("chain.chainId must be a positive integer: %w", domain.ErrInvalidConfig)
	}
	cfg.ChainId = big.NewInt(chainId)

	rawKey := strings.TrimPrefix(viper.GetString("chain.privateKey"), "0x")
	if rawKey == "" {
		return nil, xerrors.Errorf("chain.privateKey is not set: %w", domain.ErrInvalidConfig)
	}
	key, err := crypto.HexToECDSA(rawKey)
	if err != nil {
		return nil, xerrors.Errorf("chain.privateKey: %s: %w", err, domain.ErrInvalidConfig)
	}
	cfg.PrivateKey = key

	contractAddr := viper.GetString("chain.contractAddress")
	if !common.IsHexAddress(contractAddr) {
		return nil, xerrors.Errorf("chain.contractAddress %q is not a hex address: %w", contractAddr, domain.ErrInvalidConfig)
	}
	cfg.ContractAddress = common.HexToAddress(contractAddr)

	// recipient defaults to the signer address
	recipient := viper.GetString("mint.recipient")
	if recipient == "" {
		cfg.Recipient = crypto.PubkeyToAddress(key.PublicKey)
	} else if common.IsHexAddress(recipient) {
		cfg.Recipient = common.HexToAddress(recipient)
	} else {
		return nil, xerrors.Errorf("mint.recipient %q is not a hex address: %w", recipient, domain.ErrInvalidConfig)
	}

	if cfg.OracleTimeout == 0 {
		cfg.OracleTimeout = defaultOracleTimeout
	}
	if cfg.ConfirmationTimeout == 0 {
		cfg.ConfirmationTimeout = defaultConfirmationTimeout
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.ResourceTimeout == 0 {
		cfg.ResourceTimeout = defaultResourceTimeout
	}
	if cfg.IpfsGateway == "" {
		cfg.IpfsGateway = defaultIpfsGateway
	}

	return cfg, nil
}

func validateHttpUrl(raw string) error {
	if raw == "" {
		return xerrors.New("not set")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return xerrors.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return xerrors.New("missing host")
	}
	return nil
}
