package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/stake-token-contract/refunder"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0600))
	return p
}

func TestLoadConfig(t *testing.T) {
	contract := util.Uint160{1, 2, 3}

	t.Run("defaults", func(t *testing.T) {
		c, err := loadConfig(writeConfig(t, `
rpc:
  endpoint: ws://localhost:30333/ws
contract: `+contract.StringLE()+`
`))
		require.NoError(t, err)
		require.Equal(t, "ws://localhost:30333/ws", c.RPC.Endpoint)
		require.Equal(t, defaultDialTimeout, c.RPC.DialTimeout)
		require.Equal(t, defaultRequestTimeout, c.RPC.RequestTimeout)
		require.Equal(t, refunder.DefaultRetryInterval, c.Refund.RetryInterval)
		require.Equal(t, refunder.DefaultMaxAttempts, c.Refund.MaxAttempts)
		require.Equal(t, defaultLogLevel, c.Logger.Level)

		h, err := c.contract()
		require.NoError(t, err)
		require.Equal(t, contract, h)
	})

	t.Run("full", func(t *testing.T) {
		c, err := loadConfig(writeConfig(t, `
rpc:
  endpoint: ws://localhost:30333/ws
  dial_timeout: 3s
  request_timeout: 1m
contract: `+address.Uint160ToString(contract)+`
wallet:
  path: /etc/token/wallet.json
  address: `+address.Uint160ToString(util.Uint160{4})+`
  password: secret
refund:
  retry_interval: 30s
  max_attempts: 3
logger:
  level: debug
`))
		require.NoError(t, err)
		require.Equal(t, 3*time.Second, c.RPC.DialTimeout)
		require.Equal(t, time.Minute, c.RPC.RequestTimeout)
		require.Equal(t, "/etc/token/wallet.json", c.Wallet.Path)
		require.Equal(t, "secret", c.Wallet.Password)
		require.Equal(t, 30*time.Second, c.Refund.RetryInterval)
		require.Equal(t, 3, c.Refund.MaxAttempts)

		h, err := c.contract()
		require.NoError(t, err)
		require.Equal(t, contract, h)

		l, err := c.logger()
		require.NoError(t, err)
		require.NotNil(t, l)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig("")
		require.Error(t, err)
		_, err = loadConfig(filepath.Join(t.TempDir(), "none.yml"))
		require.Error(t, err)
	})

	for name, data := range map[string]string{
		"unknown key":      "rpc:\n  endpoint: ws://localhost\nfoo: bar\n",
		"no endpoint":      "contract: " + contract.StringLE() + "\n",
		"bad contract":     "rpc:\n  endpoint: ws://localhost\ncontract: NotAnAddress\n",
		"bad wallet":       "rpc:\n  endpoint: ws://localhost\nwallet:\n  address: abc\n",
		"zero attempts":    "rpc:\n  endpoint: ws://localhost\nrefund:\n  max_attempts: 0\n",
		"negative retry":   "rpc:\n  endpoint: ws://localhost\nrefund:\n  retry_interval: -1s\n",
		"zero dial":        "rpc:\n  endpoint: ws://localhost\n  dial_timeout: 0s\n",
		"bad duration":     "rpc:\n  endpoint: ws://localhost\n  dial_timeout: soon\n",
		"bad logger level": "rpc:\n  endpoint: ws://localhost\nlogger:\n  level: loud\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, data))
			require.Error(t, err)
		})
	}
}

func TestConfigContract(t *testing.T) {
	var c config
	_, err := c.contract()
	require.Error(t, err)
}

func TestConfigAccount(t *testing.T) {
	const password = "pass"

	dir := t.TempDir()
	p := filepath.Join(dir, "wallet.json")

	w, err := wallet.NewWallet(p)
	require.NoError(t, err)

	acc, err := wallet.NewAccount()
	require.NoError(t, err)
	require.NoError(t, acc.Encrypt(password, w.Scrypt))
	w.AddAccount(acc)

	other, err := wallet.NewAccount()
	require.NoError(t, err)
	require.NoError(t, other.Encrypt(password, w.Scrypt))
	other.Default = true
	w.AddAccount(other)

	require.NoError(t, w.Save())
	w.Close()

	c := defaultConfig()

	_, err = c.account()
	require.Error(t, err, "missing path")

	c.Wallet.Path = p
	c.Wallet.Password = password

	res, err := c.account()
	require.NoError(t, err)
	require.Equal(t, other.ScriptHash(), res.ScriptHash())
	require.NotNil(t, res.PrivateKey())

	c.Wallet.Address = acc.Address
	res, err = c.account()
	require.NoError(t, err)
	require.Equal(t, acc.ScriptHash(), res.ScriptHash())

	c.Wallet.Password = "wrong"
	_, err = c.account()
	require.Error(t, err)

	c.Wallet.Address = address.Uint160ToString(util.Uint160{5})
	c.Wallet.Password = password
	_, err = c.account()
	require.Error(t, err)
}
