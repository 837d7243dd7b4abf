/*
Package builder implements the state machine shared by all transaction
builders.

A builder accumulates fields, validating each one as it is set. Cross field
completeness is checked only when the transaction is built, in a fixed order:
fee, source and then the checks of the transaction type. Only the first
failure is reported.

A builder can also be seeded with a serialized transaction. In that mode all
fields are fixed and only new approvals can be added.
*/
package builder

import (
	"context"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/errors"
	"github.com/iov-one/txkit/network"
)

// Builder is implemented by the builders of all transaction types.
type Builder interface {
	// Type returns the type of transactions this builder creates.
	Type() txkit.TxType
	Fee(value interface{}) error
	Source(addr string) error
	Sign(ctx context.Context, kp *crypto.KeyPair) error
	Signature(sig []byte, kp *crypto.KeyPair) error
	From(raw []byte) error
	ValidateAddress(addr string) error
	ValidateKey(raw string) error
	ValidateTransaction() error
	Build(ctx context.Context) (*txkit.Transaction, error)
}

// Extension is implemented by each transaction type to plug its own state
// into the Base builder.
type Extension interface {
	// Validate runs the build time checks specific to the transaction
	// type. It is called after fee and source are checked.
	Validate() error

	// Fill writes the type specific fields into the payload.
	Fill(p *txkit.Payload)

	// Load validates the type specific fields of a decoded payload and
	// sets the extension state from them.
	Load(p *txkit.Payload) error

	// Empty returns true if no type specific field was set.
	Empty() bool
}

// Base implements the operations common to all transaction types. It is
// meant to be embedded by a type specific builder.
type Base struct {
	net       *network.Network
	txType    txkit.TxType
	ext       Extension
	timestamp int64

	fee    *txkit.Fee
	source string

	// seeded is set when the state was loaded from a serialized
	// transaction.
	seeded        bool
	seedApprovals []txkit.Approval

	pending []pending
}

// pending is an approval requested by Sign or Signature. When sig is nil,
// it is created at build time using the private key.
type pending struct {
	key *crypto.KeyPair
	sig []byte
}

var _ Builder = (*Base)(nil)

// NewBase returns a builder for given network and transaction type. The
// creation time of the transaction is taken from the network clock.
func NewBase(net *network.Network, t txkit.TxType, ext Extension) *Base {
	return &Base{
		net:       net,
		txType:    t,
		ext:       ext,
		timestamp: net.Now(),
	}
}

func (b *Base) Type() txkit.TxType {
	return b.txType
}

// Network returns the network this builder creates transactions for.
func (b *Base) Network() *network.Network {
	return b.net
}

// CheckMutable returns ErrCannotBeModified if the builder was seeded from a
// serialized transaction. Extensions must call it before modifying their
// state.
func (b *Base) CheckMutable() error {
	if b.seeded {
		return errors.Wrap(errors.ErrCannotBeModified, "builder seeded from a serialized transaction")
	}
	return nil
}

// Fee sets the transaction fee. See txkit.ParseFee for accepted values.
func (b *Base) Fee(value interface{}) error {
	if err := b.CheckMutable(); err != nil {
		return err
	}
	fee, err := txkit.ParseFee(value)
	if err != nil {
		return err
	}
	b.fee = &fee
	return nil
}

// Source sets the originating address. Its canonical form is stored.
func (b *Base) Source(addr string) error {
	if err := b.CheckMutable(); err != nil {
		return err
	}
	if err := b.ValidateAddress(addr); err != nil {
		return err
	}
	b.source = b.net.Addresses.Canonical(addr)
	return nil
}

// Sign requests an approval created with the private key of given key pair.
// The signature is created when the transaction is built, over its final
// hash.
func (b *Base) Sign(ctx context.Context, kp *crypto.KeyPair) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if kp == nil {
		return errors.Wrap(errors.ErrInvalidKey, "no key pair")
	}
	if !kp.HasPrivateKey() {
		return errors.Wrapf(errors.ErrMissingPrivateKey, "key %s", kp.PublicKey())
	}
	b.pending = append(b.pending, pending{key: kp})
	return nil
}

// Signature attaches an externally created signature of the transaction
// hash. Only the public key of the key pair is used. The signature is added
// to the transaction as given; use Transaction.VerifyApprovals to check it.
// Attaching the same signature more than once has no effect on the built
// transaction.
func (b *Base) Signature(sig []byte, kp *crypto.KeyPair) error {
	if kp == nil || kp.PublicKey() == nil {
		return errors.Wrap(errors.ErrInvalidKey, "no public key")
	}
	if len(sig) != crypto.SignatureSize {
		return errors.Wrapf(errors.ErrInvalidSignature, "want %d bytes, got %d", crypto.SignatureSize, len(sig))
	}
	b.pending = append(b.pending, pending{key: kp, sig: append([]byte(nil), sig...)})
	return nil
}

// From seeds the builder with a serialized transaction. The builder must be
// empty. After seeding only new approvals can be added.
func (b *Base) From(raw []byte) error {
	if b.seeded || b.fee != nil || b.source != "" || !b.ext.Empty() {
		return errors.Wrap(errors.ErrCannotBeModified, "builder is not empty")
	}

	env, err := b.net.Codec.UnmarshalEnvelope(raw)
	if err != nil {
		return err
	}
	p := &env.Payload
	if p.Type != b.txType {
		return errors.Wrapf(errors.ErrMalformedTx, "want %q transaction, got %q", b.txType, p.Type)
	}
	if p.ChainID != b.net.ChainID {
		return errors.Wrapf(errors.ErrMalformedTx, "want %q chain, got %q", b.net.ChainID, p.ChainID)
	}
	if err := p.Fee.Validate(); err != nil {
		return errors.Wrap(errors.ErrMalformedTx, err.Error())
	}
	if err := b.ValidateAddress(p.Source); err != nil {
		return errors.Wrap(errors.ErrMalformedTx, err.Error())
	}
	if b.net.Addresses.Canonical(p.Source) != p.Source {
		return errors.Wrapf(errors.ErrMalformedTx, "source %q is not canonical", p.Source)
	}

	tx, err := txkit.NewTransaction(b.net.Codec, *p, env.Approvals)
	if err != nil {
		return errors.Wrap(errors.ErrMalformedTx, err.Error())
	}
	for i, a := range env.Approvals {
		if _, err := a.Key(); err != nil {
			return errors.Wrapf(errors.ErrMalformedTx, "approval %d: %s", i, err)
		}
		if len(a.Signature) != crypto.SignatureSize {
			return errors.Wrapf(errors.ErrMalformedTx, "approval %d: want %d bytes signature, got %d", i, crypto.SignatureSize, len(a.Signature))
		}
	}

	// Extension state is the last one to be set, so that a failure leaves
	// the builder empty.
	if err := b.ext.Load(p); err != nil {
		return errors.Wrap(errors.ErrMalformedTx, err.Error())
	}

	fee := p.Fee
	b.fee = &fee
	b.source = p.Source
	b.timestamp = p.Timestamp
	b.seedApprovals = tx.Approvals()
	b.seeded = true
	return nil
}

// ValidateAddress returns ErrInvalidAddress if given address is not valid
// on the builder network.
func (b *Base) ValidateAddress(addr string) error {
	return txkit.ValidateAddress(b.net.Addresses, addr)
}

// ValidateKey returns ErrInvalidKey if given value is neither a valid hex
// encoded public key nor a valid hex encoded private key.
func (b *Base) ValidateKey(raw string) error {
	return crypto.ValidateKey(raw)
}

// ValidateTransaction checks that the builder state is complete. Checks are
// run in order and only the first failure is returned.
func (b *Base) ValidateTransaction() error {
	if b.fee == nil {
		return errors.Wrap(errors.ErrMissingFee, "fee is required")
	}
	if b.source == "" {
		return errors.Wrap(errors.ErrMissingSource, "source is required")
	}
	return b.ext.Validate()
}

// Build validates the builder state and returns the transaction. Approvals
// loaded from a seed come first, followed by all requested approvals in call
// order. Builder state is not modified.
func (b *Base) Build(ctx context.Context) (*txkit.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := b.ValidateTransaction(); err != nil {
		return nil, err
	}

	payload := txkit.Payload{
		Type:      b.txType,
		ChainID:   b.net.ChainID,
		Source:    b.source,
		Fee:       *b.fee,
		Timestamp: b.timestamp,
	}
	b.ext.Fill(&payload)

	hash, err := txkit.BuildSignBytes(b.net.Codec, &payload)
	if err != nil {
		return nil, err
	}

	approvals := append([]txkit.Approval(nil), b.seedApprovals...)
	for _, p := range b.pending {
		sig := p.sig
		if sig == nil {
			if sig, err = p.key.Sign(hash); err != nil {
				return nil, err
			}
		}
		approvals = append(approvals, txkit.Approval{PublicKey: p.key.PublicKey().Bytes(), Signature: sig})
	}

	tx, err := txkit.NewTransaction(b.net.Codec, payload, approvals)
	if err != nil {
		return nil, err
	}
	b.net.Logger.Debug("transaction built",
		"type", tx.Type(),
		"id", tx.ID(),
		"approvals", tx.SignatureCount())
	return tx, nil
}
