/*
Package network describes the chains transactions can be built for. A network
binds together an address format, a broadcast codec and the set of supported
transaction types.
*/
package network

import (
	"time"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/codec"
	"github.com/iov-one/txkit/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Network is the definition of a chain.
type Network struct {
	// ID is the registry key of this network.
	ID string
	// ChainID is included in the sign bytes of every transaction.
	ChainID   string
	Addresses txkit.AddressCodec
	Codec     txkit.Codec
	// Types lists the transaction types this network supports.
	Types  []txkit.TxType
	Logger log.Logger
	// Clock is used to timestamp new transactions.
	Clock func() time.Time
}

// Option configures a network.
type Option func(*Network)

// WithLogger sets the logger used by builders of this network.
func WithLogger(l log.Logger) Option {
	return func(n *Network) {
		n.Logger = l
	}
}

// WithClock replaces the time source. Use it to get reproducible
// transactions.
func WithClock(clock func() time.Time) Option {
	return func(n *Network) {
		n.Clock = clock
	}
}

// WithTypes overwrites the list of supported transaction types.
func WithTypes(types ...txkit.TxType) Option {
	return func(n *Network) {
		n.Types = types
	}
}

// WithCodec overwrites the broadcast codec.
func WithCodec(c txkit.Codec) Option {
	return func(n *Network) {
		n.Codec = c
	}
}

// HexKey returns a network that uses hex encoded public keys as addresses
// and the amino codec. Both wallet initialization and transfers are
// supported.
func HexKey(id, chainID string, opts ...Option) *Network {
	n := &Network{
		ID:        id,
		ChainID:   chainID,
		Addresses: txkit.HexKeyAddressCodec{},
		Codec:     codec.NewAmino(),
		Types:     []txkit.TxType{txkit.WalletInitialization, txkit.Transfer},
	}
	return n.apply(opts)
}

// Bech32 returns a network that uses bech32 account hashes with given human
// readable part as addresses and the protobuf codec. Only transfers are
// supported.
func Bech32(id, chainID, hrp string, opts ...Option) *Network {
	n := &Network{
		ID:        id,
		ChainID:   chainID,
		Addresses: txkit.Bech32AddressCodec{HRP: hrp},
		Codec:     codec.NewProto(),
		Types:     []txkit.TxType{txkit.Transfer},
	}
	return n.apply(opts)
}

func (n *Network) apply(opts []Option) *Network {
	for _, fn := range opts {
		fn(n)
	}
	if n.Logger == nil {
		n.Logger = log.NewNopLogger()
	}
	if n.Clock == nil {
		n.Clock = time.Now
	}
	n.Logger = n.Logger.With("network", n.ID)
	return n
}

// Validate returns an error if the network definition is not complete.
func (n *Network) Validate() error {
	var errs error
	if n.ID == "" {
		errs = errors.AppendField(errs, "ID", errors.Wrap(errors.ErrInvalidInput, "required"))
	}
	if !txkit.IsValidChainID(n.ChainID) {
		errs = errors.AppendField(errs, "ChainID", errors.Wrapf(errors.ErrInvalidInput, "%q", n.ChainID))
	}
	if n.Addresses == nil {
		errs = errors.AppendField(errs, "Addresses", errors.Wrap(errors.ErrInvalidInput, "required"))
	}
	if n.Codec == nil {
		errs = errors.AppendField(errs, "Codec", errors.Wrap(errors.ErrInvalidInput, "required"))
	}
	if len(n.Types) == 0 {
		errs = errors.AppendField(errs, "Types", errors.Wrap(errors.ErrInvalidInput, "required"))
	}
	for i, t := range n.Types {
		if t != txkit.WalletInitialization && t != txkit.Transfer {
			errs = errors.AppendField(errs, "Types", errors.Wrapf(errors.ErrUnsupportedTxType, "%d: %q", i, t))
		}
	}
	return errs
}

// Supports returns true if transactions of given type can be built for this
// network.
func (n *Network) Supports(t txkit.TxType) bool {
	for _, s := range n.Types {
		if s == t {
			return true
		}
	}
	return false
}

// Now returns the current network time in unix milliseconds.
func (n *Network) Now() int64 {
	return n.Clock().UnixNano() / int64(time.Millisecond)
}
