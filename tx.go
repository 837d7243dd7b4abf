package txkit

import (
	"bytes"
	"regexp"

	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/errors"
	"golang.org/x/crypto/blake2b"
)

// TxType is the type tag of a transaction.
type TxType string

const (
	// WalletInitialization creates a wallet governed by a quorum of
	// owners.
	WalletInitialization TxType = "walletInitialization"

	// Transfer moves funds from the source to a recipient.
	Transfer TxType = "transfer"
)

// Payload is the chain native part of a transaction. This is the content
// approved by every signature.
type Payload struct {
	Type    TxType
	ChainID string
	// Source is the canonical address of the originating account.
	Source string
	Fee    Fee
	// Timestamp is the creation time, in unix milliseconds.
	Timestamp int64
	// Owners is set only for wallet initialization transactions.
	Owners []string
	// Transfer is set only for transfer transactions.
	Transfer *TransferMsg
}

// TransferMsg is the transfer specific section of a payload.
type TransferMsg struct {
	To     string
	Amount string
	// ID is an optional, caller assigned reference.
	ID uint64
}

// Clone returns a deep copy of the payload.
func (p Payload) Clone() Payload {
	c := p
	if len(p.Owners) == 0 {
		c.Owners = nil
	} else {
		c.Owners = append([]string(nil), p.Owners...)
	}
	if p.Transfer != nil {
		t := *p.Transfer
		c.Transfer = &t
	}
	return c
}

// Approval is a signature of the transaction hash together with the tagged
// public key that created it.
type Approval struct {
	PublicKey []byte
	Signature []byte
}

// Key decodes the public key of this approval.
func (a Approval) Key() (*crypto.PublicKey, error) {
	return crypto.PublicKeyFromBytes(a.PublicKey)
}

// Equals returns true if both approvals carry the same key and signature.
func (a Approval) Equals(o Approval) bool {
	return bytes.Equal(a.PublicKey, o.PublicKey) && bytes.Equal(a.Signature, o.Signature)
}

// Envelope is the unit of serialization: a payload with all its approvals.
type Envelope struct {
	Payload   Payload
	Approvals []Approval
}

// Codec implements the broadcast format of a network.
type Codec interface {
	// MarshalPayload returns the deterministic binary representation of
	// a payload. Sign bytes are built from it.
	MarshalPayload(p *Payload) ([]byte, error)

	// MarshalEnvelope returns the broadcast format of a transaction.
	MarshalEnvelope(e *Envelope) ([]byte, error)

	// UnmarshalEnvelope decodes the broadcast format. Any input that
	// cannot be decoded must result in ErrMalformedTx.
	UnmarshalEnvelope(raw []byte) (*Envelope, error)
}

// SignCodeV1 is the current way to prefix the bytes we use to build a
// signature.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// BuildSignBytes returns the message that every approval of a transaction
// with given payload signs. It is the blake2b-256 hash of the versioned,
// chain bound payload encoding and is also used as the transaction ID.
func BuildSignBytes(codec Codec, p *Payload) ([]byte, error) {
	if !IsValidChainID(p.ChainID) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "chain id: %q", p.ChainID)
	}
	raw, err := codec.MarshalPayload(p)
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}

	output := make([]byte, 0, len(SignCodeV1)+1+len(p.ChainID)+len(raw))
	output = append(output, SignCodeV1...)
	output = append(output, uint8(len(p.ChainID)))
	output = append(output, p.ChainID...)
	output = append(output, raw...)

	hashed := blake2b.Sum256(output)
	return hashed[:], nil
}

var isChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,25}$`).MatchString

// IsValidChainID returns true if the chain id is between 6 and 25 characters
// long, made only of letters, digits, underscore and dash.
func IsValidChainID(chainID string) bool {
	return isChainID(chainID)
}
