/*
Package config loads the definition of the networks transactions are built
for.

Configuration is read from a JSON, YAML or TOML file. Top level values can be
overwritten with environment variables prefixed with TXKIT_, for example
TXKIT_LOG_LEVEL=debug.
*/
package config

import (
	"io"
	"strings"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/errors"
	"github.com/iov-one/txkit/factory"
	"github.com/iov-one/txkit/network"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

// Network kinds.
const (
	KindHexKey = "hexkey"
	KindBech32 = "bech32"
)

// Config is the application configuration.
type Config struct {
	// LogLevel is one of debug, info, error or none.
	LogLevel string `mapstructure:"log_level"`
	// Network is the ID of the network used when none is requested.
	Network  string          `mapstructure:"network"`
	Networks []NetworkConfig `mapstructure:"networks"`
}

// NetworkConfig declares a single network.
type NetworkConfig struct {
	ID      string `mapstructure:"id"`
	ChainID string `mapstructure:"chain_id"`
	// Kind selects the address format and codec, either hexkey or bech32.
	Kind string `mapstructure:"kind"`
	// HRP is the bech32 address prefix. Required by bech32 networks.
	HRP string `mapstructure:"hrp"`
	// Types overwrites the transaction types supported by the kind.
	Types []string `mapstructure:"types"`
}

// Default returns a configuration with a local hex key network and a bech32
// test network.
func Default() Config {
	return Config{
		LogLevel: "info",
		Network:  "local",
		Networks: []NetworkConfig{
			{ID: "local", ChainID: "local-chain", Kind: KindHexKey},
			{ID: "testnet", ChainID: "iov-testnet", Kind: KindBech32, HRP: "tiov"},
		},
	}
}

// Load reads the configuration from given file. Values missing from the file
// are taken from Default. If path is empty, only defaults and the environment
// are used.
func Load(path string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetEnvPrefix("TXKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("network", def.Network)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(errors.ErrInvalidInput, "read %q: %s", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrapf(errors.ErrInvalidInput, "unmarshal: %s", err)
	}
	if len(c.Networks) == 0 {
		c.Networks = def.Networks
	}
	return c, c.Validate()
}

// Validate returns all problems found in the configuration.
func (c Config) Validate() error {
	var errs error
	if _, err := log.AllowLevel(c.LogLevel); err != nil {
		errs = errors.AppendField(errs, "LogLevel", errors.Wrap(errors.ErrInvalidInput, err.Error()))
	}
	if len(c.Networks) == 0 {
		errs = errors.AppendField(errs, "Networks", errors.Wrap(errors.ErrInvalidInput, "required"))
	}

	seen := make(map[string]bool)
	found := false
	for i, n := range c.Networks {
		field := errors.FieldPath("Networks", i)
		if seen[n.ID] {
			errs = errors.AppendField(errs, errors.FieldPath("Networks", i, "ID"), errors.Wrapf(errors.ErrInvalidInput, "duplicated %q", n.ID))
		}
		seen[n.ID] = true
		found = found || n.ID == c.Network

		if _, err := n.network(log.NewNopLogger()); err != nil {
			errs = errors.Append(errs, errors.Field(field, err, ""))
		}
	}
	if c.Network != "" && !found {
		errs = errors.AppendField(errs, "Network", errors.Wrapf(errors.ErrUnregisteredNetwork, "%q", c.Network))
	}
	return errs
}

// network returns the network definition. It is validated.
func (n NetworkConfig) network(logger log.Logger) (*network.Network, error) {
	opts := []network.Option{network.WithLogger(logger)}
	if len(n.Types) != 0 {
		types := make([]txkit.TxType, len(n.Types))
		for i, t := range n.Types {
			types[i] = txkit.TxType(t)
		}
		opts = append(opts, network.WithTypes(types...))
	}

	var net *network.Network
	switch strings.ToLower(n.Kind) {
	case KindHexKey:
		net = network.HexKey(n.ID, n.ChainID, opts...)
	case KindBech32:
		if n.HRP == "" {
			return nil, errors.Field("HRP", errors.ErrInvalidInput, "required by bech32 network")
		}
		net = network.Bech32(n.ID, n.ChainID, n.HRP, opts...)
	default:
		return nil, errors.Field("Kind", errors.ErrInvalidInput, "unknown kind %q", n.Kind)
	}
	if err := net.Validate(); err != nil {
		return nil, err
	}
	return net, nil
}

// Registry returns a registry with all configured networks registered.
func (c Config) Registry(logger log.Logger) (*factory.Registry, error) {
	r := factory.NewRegistry(factory.WithLogger(logger))
	for _, n := range c.Networks {
		net, err := n.network(logger)
		if err != nil {
			return nil, errors.Wrapf(err, "network %q", n.ID)
		}
		if _, err := r.Register(net); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewLogger returns a logger writing to w that is filtered according to the
// configured level.
func (c Config) NewLogger(w io.Writer) (log.Logger, error) {
	allow, err := log.AllowLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	return log.NewFilter(logger, allow), nil
}
