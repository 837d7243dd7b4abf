package walletinit

import (
	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/builder"
	"github.com/iov-one/txkit/errors"
	"github.com/iov-one/txkit/network"
)

// Builder creates wallet initialization transactions.
type Builder struct {
	*builder.Base
	owners *txkit.Owners
}

var _ builder.Builder = (*Builder)(nil)

// NewBuilder returns an empty builder for given network.
func NewBuilder(net *network.Network) *Builder {
	b := &Builder{owners: txkit.NewOwners(txkit.MaxOwners)}
	b.Base = builder.NewBase(net, txkit.WalletInitialization, (*extension)(b))
	return b
}

// Owner adds an owner to the wallet quorum. The address is validated
// immediately.
func (b *Builder) Owner(addr string) error {
	if err := b.CheckMutable(); err != nil {
		return err
	}
	return b.owners.Add(b.Network().Addresses, addr)
}

// Owners returns the canonical addresses of all owners, in the order they
// were added.
func (b *Builder) Owners() []string {
	return b.owners.List()
}

// extension plugs the owner set into the base builder.
type extension Builder

func (e *extension) Validate() error {
	return txkit.ValidateOwnerCount(e.owners.List(), txkit.RequiredOwners)
}

func (e *extension) Fill(p *txkit.Payload) {
	p.Owners = e.owners.List()
}

func (e *extension) Load(p *txkit.Payload) error {
	if p.Transfer != nil {
		return errors.Wrap(errors.ErrInvalidInput, "unexpected transfer section")
	}
	addrs := e.Network().Addresses
	if err := txkit.ValidateOwners(addrs, p.Owners, txkit.RequiredOwners, txkit.MaxOwners); err != nil {
		return err
	}
	owners := txkit.NewOwners(txkit.MaxOwners)
	for _, o := range p.Owners {
		if addrs.Canonical(o) != o {
			return errors.Wrapf(errors.ErrInvalidAddress, "owner %q is not canonical", o)
		}
		// Validated above.
		_ = owners.Add(addrs, o)
	}
	e.owners = owners
	return nil
}

func (e *extension) Empty() bool {
	return e.owners.Len() == 0
}
