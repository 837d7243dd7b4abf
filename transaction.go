package txkit

import (
	"encoding/json"
	"strconv"

	"github.com/iov-one/txkit/errors"
	"github.com/tendermint/tendermint/libs/common"
)

// Transaction is a built transaction. It cannot be modified. To add more
// approvals, seed a new builder with its broadcast format.
type Transaction struct {
	payload   Payload
	approvals []Approval
	hash      []byte
	codec     Codec
}

// NewTransaction returns a transaction for given payload and approvals. The
// payload is not validated beyond the chain ID, this is the job of the
// builder. Approvals are not verified, use VerifyApprovals.
func NewTransaction(codec Codec, payload Payload, approvals []Approval) (*Transaction, error) {
	p := payload.Clone()
	hash, err := BuildSignBytes(codec, &p)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		payload:   p,
		approvals: MergeApprovals(nil, approvals...),
		hash:      hash,
		codec:     codec,
	}, nil
}

// DecodeTransaction returns the transaction serialized in the broadcast
// format of given codec.
func DecodeTransaction(codec Codec, raw []byte) (*Transaction, error) {
	env, err := codec.UnmarshalEnvelope(raw)
	if err != nil {
		return nil, err
	}
	tx, err := NewTransaction(codec, env.Payload, env.Approvals)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMalformedTx, err.Error())
	}
	return tx, nil
}

// MergeApprovals appends approvals to the list, skipping those already
// present. Order of first appearance is kept.
func MergeApprovals(list []Approval, approvals ...Approval) []Approval {
	out := make([]Approval, 0, len(list)+len(approvals))
	for _, a := range append(append([]Approval(nil), list...), approvals...) {
		dup := false
		for _, b := range out {
			if a.Equals(b) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, Approval{
				PublicKey: append([]byte(nil), a.PublicKey...),
				Signature: append([]byte(nil), a.Signature...),
			})
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Hash returns the transaction hash. This is the message approvals sign.
func (tx *Transaction) Hash() []byte {
	return append([]byte(nil), tx.hash...)
}

// ID returns the transaction hash as upper case hex.
func (tx *Transaction) ID() string {
	return common.HexBytes(tx.hash).String()
}

func (tx *Transaction) Type() TxType {
	return tx.payload.Type
}

func (tx *Transaction) ChainID() string {
	return tx.payload.ChainID
}

// From returns the canonical source address.
func (tx *Transaction) From() string {
	return tx.payload.Source
}

func (tx *Transaction) Fee() Fee {
	return tx.payload.Fee
}

// Timestamp returns the creation time in unix milliseconds.
func (tx *Transaction) Timestamp() int64 {
	return tx.payload.Timestamp
}

// Owners returns a copy of the owner list. It is empty unless this is a
// wallet initialization.
func (tx *Transaction) Owners() []string {
	return tx.payload.Clone().Owners
}

// Payload returns a copy of the chain native payload.
func (tx *Transaction) Payload() Payload {
	return tx.payload.Clone()
}

// Approvals returns a copy of the approval list, in the order they were
// added.
func (tx *Transaction) Approvals() []Approval {
	return MergeApprovals(nil, tx.approvals...)
}

// SignatureCount returns the number of approvals.
func (tx *Transaction) SignatureCount() int {
	return len(tx.approvals)
}

// Envelope returns the serializable form of the transaction.
func (tx *Transaction) Envelope() *Envelope {
	return &Envelope{
		Payload:   tx.Payload(),
		Approvals: tx.Approvals(),
	}
}

// ToBroadcastFormat serializes the transaction together with all its
// approvals.
func (tx *Transaction) ToBroadcastFormat() ([]byte, error) {
	return tx.codec.MarshalEnvelope(tx.Envelope())
}

// VerifyApprovals returns ErrInvalidSignature if any of the approvals is not
// a valid signature of the transaction hash. All failures are reported.
func (tx *Transaction) VerifyApprovals() error {
	var err error
	for i, a := range tx.approvals {
		field := errors.FieldPath("Approvals", i)
		pub, keyErr := a.Key()
		if keyErr != nil {
			err = errors.AppendField(err, field, errors.Wrap(errors.ErrInvalidSignature, keyErr.Error()))
			continue
		}
		if !pub.Verify(tx.hash, a.Signature) {
			err = errors.AppendField(err, field, errors.Wrapf(errors.ErrInvalidSignature, "signer %s", pub))
		}
	}
	return err
}

// View is the structured representation of a transaction, meant for
// inspection.
type View struct {
	ID             common.HexBytes `json:"id"`
	Type           TxType          `json:"type"`
	ChainID        string          `json:"chainId"`
	From           string          `json:"from"`
	Fee            FeeView         `json:"fee"`
	Timestamp      int64           `json:"timestamp"`
	Owners         []string        `json:"owners,omitempty"`
	To             string          `json:"to,omitempty"`
	Amount         string          `json:"amount,omitempty"`
	TransferID     string          `json:"transferId,omitempty"`
	SignatureCount int             `json:"signatureCount"`
	Signers        []string        `json:"signers,omitempty"`
}

// FeeView is the decimal string form of a fee.
type FeeView struct {
	GasLimit string `json:"gasLimit"`
	GasPrice string `json:"gasPrice"`
}

// ToJSON returns the structured view of the transaction. Signers are the
// public keys of all approvals, in order.
func (tx *Transaction) ToJSON() View {
	opts := tx.payload.Fee.Options()
	v := View{
		ID:             common.HexBytes(tx.Hash()),
		Type:           tx.payload.Type,
		ChainID:        tx.payload.ChainID,
		From:           tx.payload.Source,
		Fee:            FeeView{GasLimit: opts.GasLimit, GasPrice: opts.GasPrice},
		Timestamp:      tx.payload.Timestamp,
		Owners:         tx.Owners(),
		SignatureCount: len(tx.approvals),
	}
	if t := tx.payload.Transfer; t != nil {
		v.To = t.To
		v.Amount = t.Amount
		if t.ID != 0 {
			v.TransferID = strconv.FormatUint(t.ID, 10)
		}
	}
	for _, a := range tx.approvals {
		v.Signers = append(v.Signers, common.HexBytes(a.PublicKey).String())
	}
	return v
}

// MarshalJSON serializes the structured view.
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.ToJSON())
}
