package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/errors"
	"github.com/iov-one/txkit/txkittest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestDefaultIsValid(t *testing.T) {
	assert.Nil(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		Mutate  func(*Config)
		Field   string
		WantErr *errors.Error
	}{
		"unknown log level": {
			Mutate:  func(c *Config) { c.LogLevel = "verbose" },
			Field:   "LogLevel",
			WantErr: errors.ErrInvalidInput,
		},
		"no networks": {
			Mutate:  func(c *Config) { c.Networks = nil; c.Network = "" },
			Field:   "Networks",
			WantErr: errors.ErrInvalidInput,
		},
		"duplicated network": {
			Mutate:  func(c *Config) { c.Networks[1].ID = "local" },
			Field:   "Networks.1.ID",
			WantErr: errors.ErrInvalidInput,
		},
		"unknown kind": {
			Mutate:  func(c *Config) { c.Networks[0].Kind = "evm" },
			Field:   "Networks.0",
			WantErr: errors.ErrInvalidInput,
		},
		"bech32 without prefix": {
			Mutate:  func(c *Config) { c.Networks[1].HRP = "" },
			Field:   "Networks.1",
			WantErr: errors.ErrInvalidInput,
		},
		"invalid chain id": {
			Mutate:  func(c *Config) { c.Networks[0].ChainID = "a b" },
			Field:   "Networks.0",
			WantErr: errors.ErrInvalidInput,
		},
		"unknown type": {
			Mutate:  func(c *Config) { c.Networks[0].Types = []string{"vote"} },
			Field:   "Networks.0",
			WantErr: errors.ErrUnsupportedTxType,
		},
		"unknown default network": {
			Mutate:  func(c *Config) { c.Network = "mainnet" },
			Field:   "Network",
			WantErr: errors.ErrUnregisteredNetwork,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			c := Default()
			tc.Mutate(&c)
			assert.FieldError(t, c.Validate(), tc.Field, tc.WantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "txkit-config")
	if err != nil {
		t.Fatalf("cannot create temp dir: %s", err)
	}
	defer os.RemoveAll(dir)

	yaml := `
log_level: debug
network: mainnet
networks:
  - id: mainnet
    chain_id: iov-mainnet
    kind: bech32
    hrp: iov
  - id: dev
    chain_id: dev-chain
    kind: hexkey
    types: [walletInitialization]
`
	path := filepath.Join(dir, "txkit.yaml")
	if err := ioutil.WriteFile(path, []byte(yaml), 0600); err != nil {
		t.Fatalf("cannot write config: %s", err)
	}

	c, err := Load(path)
	assert.Nil(t, err)
	if c.LogLevel != "debug" || c.Network != "mainnet" {
		t.Fatalf("unexpected config: %+v", c)
	}
	if len(c.Networks) != 2 || c.Networks[0].HRP != "iov" {
		t.Fatalf("unexpected networks: %+v", c.Networks)
	}

	r, err := c.Registry(log.NewNopLogger())
	assert.Nil(t, err)
	if ids := r.Networks(); strings.Join(ids, ",") != "dev,mainnet" {
		t.Fatalf("unexpected networks: %v", ids)
	}
	if _, err := r.BuilderFor("dev", txkit.Transfer); !errors.ErrUnsupportedTxType.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	if _, err := r.BuilderFor("dev", txkit.WalletInitialization); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestLoadDefaultsAndEnvironment(t *testing.T) {
	t.Setenv("TXKIT_LOG_LEVEL", "error")

	c, err := Load("")
	assert.Nil(t, err)
	if c.LogLevel != "error" {
		t.Fatalf("environment not applied: %+v", c)
	}
	if c.Network != "local" || len(c.Networks) != 2 {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(os.TempDir(), "does-not-exist", "txkit.json"))
	assert.IsErr(t, errors.ErrInvalidInput, err)
}

func TestNewLogger(t *testing.T) {
	c := Default()
	c.LogLevel = "error"
	var buf bytes.Buffer
	logger, err := c.NewLogger(&buf)
	assert.Nil(t, err)

	logger.Info("hidden")
	logger.Error("visible", "key", "value")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "visible") {
		t.Fatalf("unexpected output: %q", out)
	}
}
