/*
Package factory provides access to transaction builders by network.

Networks are registered explicitly in a Registry, usually once when the
application starts. Registration is idempotent: registering a network ID
again returns the factory created by the first registration.
*/
package factory

import (
	"sync"

	"github.com/google/btree"
	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/builder"
	"github.com/iov-one/txkit/errors"
	"github.com/iov-one/txkit/network"
	"github.com/iov-one/txkit/x/transfer"
	"github.com/iov-one/txkit/x/walletinit"
	"github.com/tendermint/tendermint/libs/log"
)

// Registry holds factories of all registered networks. It is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	tree   *btree.BTree
	logger log.Logger
}

// Option configures a registry.
type Option func(*Registry)

// WithLogger sets the logger used to report registrations.
func WithLogger(l log.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		tree:   btree.New(2),
		logger: log.NewNopLogger(),
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

// entry is the btree item, ordered by network ID.
type entry struct {
	id      string
	factory *Factory
}

func (e *entry) Less(than btree.Item) bool {
	return e.id < than.(*entry).id
}

// Register creates a factory for given network. If a network with the same
// ID is already registered, its factory is returned and the given definition
// is ignored.
func (r *Registry) Register(net *network.Network) (*Factory, error) {
	if net == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "no network")
	}
	if err := net.Validate(); err != nil {
		return nil, errors.Wrapf(err, "network %q", net.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if item := r.tree.Get(&entry{id: net.ID}); item != nil {
		r.logger.Debug("network already registered", "network", net.ID)
		return item.(*entry).factory, nil
	}
	f := &Factory{net: net}
	r.tree.ReplaceOrInsert(&entry{id: net.ID, factory: f})
	r.logger.Info("network registered",
		"network", net.ID,
		"chain", net.ChainID,
		"types", net.Types)
	return f, nil
}

// Factory returns the factory of a registered network.
func (r *Registry) Factory(id string) (*Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item := r.tree.Get(&entry{id: id})
	if item == nil {
		return nil, errors.Wrapf(errors.ErrUnregisteredNetwork, "%q", id)
	}
	return item.(*entry).factory, nil
}

// BuilderFor returns a new, empty builder of given type for a registered
// network.
func (r *Registry) BuilderFor(id string, t txkit.TxType) (builder.Builder, error) {
	f, err := r.Factory(id)
	if err != nil {
		return nil, err
	}
	return f.Builder(t)
}

// Networks returns the IDs of all registered networks in ascending order.
func (r *Registry) Networks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, r.tree.Len())
	r.tree.Ascend(func(i btree.Item) bool {
		ids = append(ids, i.(*entry).id)
		return true
	})
	return ids
}

// Factory creates builders for a single network.
type Factory struct {
	net *network.Network
}

// Network returns the network definition.
func (f *Factory) Network() *network.Network {
	return f.net
}

// WalletInitializationBuilder returns a new, empty wallet initialization
// builder.
func (f *Factory) WalletInitializationBuilder() (*walletinit.Builder, error) {
	if !f.net.Supports(txkit.WalletInitialization) {
		return nil, errors.Wrapf(errors.ErrUnsupportedTxType, "%q on %q", txkit.WalletInitialization, f.net.ID)
	}
	return walletinit.NewBuilder(f.net), nil
}

// TransferBuilder returns a new, empty transfer builder.
func (f *Factory) TransferBuilder() (*transfer.Builder, error) {
	if !f.net.Supports(txkit.Transfer) {
		return nil, errors.Wrapf(errors.ErrUnsupportedTxType, "%q on %q", txkit.Transfer, f.net.ID)
	}
	return transfer.NewBuilder(f.net), nil
}

// Builder returns a new, empty builder of given type.
func (f *Factory) Builder(t txkit.TxType) (builder.Builder, error) {
	// Concrete builders are not returned directly to avoid a non nil
	// interface holding a nil pointer.
	switch t {
	case txkit.WalletInitialization:
		b, err := f.WalletInitializationBuilder()
		if err != nil {
			return nil, err
		}
		return b, nil
	case txkit.Transfer:
		b, err := f.TransferBuilder()
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedTxType, "%q", t)
	}
}

// From returns a builder seeded with a serialized transaction. The builder
// type is picked according to the transaction type.
func (f *Factory) From(raw []byte) (builder.Builder, error) {
	env, err := f.net.Codec.UnmarshalEnvelope(raw)
	if err != nil {
		return nil, err
	}
	b, err := f.Builder(env.Payload.Type)
	if err != nil {
		return nil, err
	}
	if err := b.From(raw); err != nil {
		return nil, err
	}
	return b, nil
}
