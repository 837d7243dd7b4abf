/*
Package transfer implements the builder of transactions moving funds from the
source account to a recipient.
*/
package transfer

import (
	"math/big"
	"strings"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/builder"
	"github.com/iov-one/txkit/errors"
	"github.com/iov-one/txkit/network"
	"github.com/shopspring/decimal"
)

// Builder creates transfer transactions.
type Builder struct {
	*builder.Base
	to     string
	amount string
	id     uint64
}

var _ builder.Builder = (*Builder)(nil)

// NewBuilder returns an empty builder for given network.
func NewBuilder(net *network.Network) *Builder {
	b := &Builder{}
	b.Base = builder.NewBase(net, txkit.Transfer, (*extension)(b))
	return b
}

// To sets the recipient address. Its canonical form is stored.
func (b *Builder) To(addr string) error {
	if err := b.CheckMutable(); err != nil {
		return err
	}
	if err := b.ValidateAddress(addr); err != nil {
		return err
	}
	b.to = b.Network().Addresses.Canonical(addr)
	return nil
}

// Amount sets the amount of funds to transfer. It must be a positive integer
// given as a decimal string, an integer or a decimal.Decimal.
func (b *Builder) Amount(value interface{}) error {
	if err := b.CheckMutable(); err != nil {
		return err
	}
	amount, err := ParseAmount(value)
	if err != nil {
		return err
	}
	b.amount = amount
	return nil
}

// TransferID sets an optional reference that is included in the payload.
func (b *Builder) TransferID(id uint64) error {
	if err := b.CheckMutable(); err != nil {
		return err
	}
	b.id = id
	return nil
}

// ParseAmount returns the canonical decimal string of the amount.
func ParseAmount(value interface{}) (string, error) {
	var d decimal.Decimal
	switch v := value.(type) {
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return "", errors.Wrapf(errors.ErrInvalidAmount, "malformed value %q", v)
		}
		d = parsed
	case decimal.Decimal:
		d = v
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case uint64:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
	default:
		return "", errors.Wrapf(errors.ErrInvalidAmount, "unsupported type %T", value)
	}
	if !d.IsPositive() {
		return "", errors.Wrapf(errors.ErrInvalidAmount, "%s is not greater than zero", d)
	}
	if !d.IsInteger() {
		return "", errors.Wrapf(errors.ErrInvalidAmount, "%s is not an integer", d)
	}
	return d.String(), nil
}

// extension plugs the transfer fields into the base builder.
type extension Builder

func (e *extension) Validate() error {
	if e.to == "" {
		return errors.Wrap(errors.ErrMissingRecipient, "recipient is required")
	}
	if e.amount == "" {
		return errors.Wrap(errors.ErrInvalidAmount, "amount is required")
	}
	return nil
}

func (e *extension) Fill(p *txkit.Payload) {
	p.Transfer = &txkit.TransferMsg{
		To:     e.to,
		Amount: e.amount,
		ID:     e.id,
	}
}

func (e *extension) Load(p *txkit.Payload) error {
	if len(p.Owners) != 0 {
		return errors.Wrap(errors.ErrInvalidInput, "unexpected owners")
	}
	t := p.Transfer
	if t == nil {
		return errors.Wrap(errors.ErrMissingRecipient, "no transfer section")
	}
	addrs := e.Network().Addresses
	if err := txkit.ValidateAddress(addrs, t.To); err != nil {
		return err
	}
	if addrs.Canonical(t.To) != t.To {
		return errors.Wrapf(errors.ErrInvalidAddress, "recipient %q is not canonical", t.To)
	}
	amount, err := ParseAmount(t.Amount)
	if err != nil {
		return err
	}
	if amount != t.Amount {
		return errors.Wrapf(errors.ErrInvalidAmount, "amount %q is not canonical", t.Amount)
	}
	e.to, e.amount, e.id = t.To, t.Amount, t.ID
	return nil
}

func (e *extension) Empty() bool {
	return e.to == "" && e.amount == "" && e.id == 0
}
