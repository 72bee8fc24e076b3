package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/stake-token-contract/refunder"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultDialTimeout    = 15 * time.Second
	defaultRequestTimeout = 15 * time.Second
	defaultLogLevel       = "info"
)

// config is a YAML configuration of the application.
type config struct {
	RPC struct {
		Endpoint       string        `yaml:"endpoint"`
		DialTimeout    time.Duration `yaml:"dial_timeout"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
	} `yaml:"rpc"`

	// Token contract address, either Neo address or LE hex string.
	Contract string `yaml:"contract"`

	Wallet struct {
		Path     string `yaml:"path"`
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
	} `yaml:"wallet"`

	Refund struct {
		RetryInterval time.Duration `yaml:"retry_interval"`
		MaxAttempts   int           `yaml:"max_attempts"`
	} `yaml:"refund"`

	Logger struct {
		Level string `yaml:"level"`
	} `yaml:"logger"`
}

func defaultConfig() *config {
	var c config
	c.RPC.DialTimeout = defaultDialTimeout
	c.RPC.RequestTimeout = defaultRequestTimeout
	c.Refund.RetryInterval = refunder.DefaultRetryInterval
	c.Refund.MaxAttempts = refunder.DefaultMaxAttempts
	c.Logger.Level = defaultLogLevel
	return &c
}

// loadConfig reads configuration from the YAML file. Missing values are set
// to defaults, unknown keys are rejected.
func loadConfig(path string) (*config, error) {
	if path == "" {
		return nil, errors.New("missing config file path")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	c := defaultConfig()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	err = dec.Decode(c)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	err = c.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return c, nil
}

func (c *config) validate() error {
	switch {
	case c.RPC.Endpoint == "":
		return errors.New("missing RPC endpoint")
	case c.RPC.DialTimeout <= 0:
		return fmt.Errorf("non-positive dial timeout %s", c.RPC.DialTimeout)
	case c.RPC.RequestTimeout <= 0:
		return fmt.Errorf("non-positive request timeout %s", c.RPC.RequestTimeout)
	case c.Refund.RetryInterval <= 0:
		return fmt.Errorf("non-positive refund retry interval %s", c.Refund.RetryInterval)
	case c.Refund.MaxAttempts <= 0:
		return fmt.Errorf("non-positive number of refund attempts %d", c.Refund.MaxAttempts)
	}

	if c.Contract != "" {
		if _, err := c.contract(); err != nil {
			return err
		}
	}

	if c.Wallet.Address != "" {
		if _, err := address.StringToUint160(c.Wallet.Address); err != nil {
			return fmt.Errorf("invalid wallet address: %w", err)
		}
	}

	_, err := zapcore.ParseLevel(c.Logger.Level)
	if err != nil {
		return fmt.Errorf("invalid logger level: %w", err)
	}

	return nil
}

// contract returns configured Token contract address.
func (c *config) contract() (util.Uint160, error) {
	if c.Contract == "" {
		return util.Uint160{}, errors.New("missing contract address")
	}

	if h, err := address.StringToUint160(c.Contract); err == nil {
		return h, nil
	}

	h, err := util.Uint160DecodeStringLE(c.Contract)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("contract '%s' is neither Neo address nor LE hex string", c.Contract)
	}

	return h, nil
}

// account opens the configured wallet and returns its decrypted account. The
// default wallet account is used if address is not set.
func (c *config) account() (*wallet.Account, error) {
	return c.walletAccount(c.Wallet.Address)
}

// walletAccount opens the configured wallet and returns its decrypted account
// with the given address, the default one if addr is empty.
func (c *config) walletAccount(addr string) (*wallet.Account, error) {
	if c.Wallet.Path == "" {
		return nil, errors.New("missing wallet path")
	}

	w, err := wallet.NewWalletFromFile(c.Wallet.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	var acc *wallet.Account

	if addr != "" {
		h, err := address.StringToUint160(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet address: %w", err)
		}

		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s not found in the wallet", addr)
		}
	} else {
		acc = w.GetAccount(w.GetChangeAddress())
		if acc == nil {
			return nil, errors.New("wallet has no default account")
		}
	}

	err = acc.Decrypt(c.Wallet.Password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}

func (c *config) logger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.Logger.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zc.Build()
}
