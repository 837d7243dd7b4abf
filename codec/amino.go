package codec

import (
	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/errors"
	amino "github.com/tendermint/go-amino"
)

// Amino is a codec that serializes transactions using the binary amino
// encoding. The envelope is length prefixed, the payload used for sign bytes
// is bare.
type Amino struct {
	cdc *amino.Codec
}

var _ txkit.Codec = (*Amino)(nil)

// NewAmino returns an amino codec.
func NewAmino() *Amino {
	return &Amino{cdc: amino.NewCodec()}
}

func (a *Amino) MarshalPayload(p *txkit.Payload) ([]byte, error) {
	raw, err := a.cdc.MarshalBinaryBare(toAminoPayload(p))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "amino: %s", err)
	}
	return raw, nil
}

func (a *Amino) MarshalEnvelope(e *txkit.Envelope) ([]byte, error) {
	msg := aminoEnvelope{Payload: toAminoPayload(&e.Payload)}
	for _, ap := range e.Approvals {
		msg.Approvals = append(msg.Approvals, aminoApproval{
			PubKey:    ap.PublicKey,
			Signature: ap.Signature,
		})
	}
	raw, err := a.cdc.MarshalBinaryLengthPrefixed(msg)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "amino: %s", err)
	}
	return raw, nil
}

func (a *Amino) UnmarshalEnvelope(raw []byte) (*txkit.Envelope, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrMalformedTx, "empty")
	}
	var msg aminoEnvelope
	err := recoverDecode(func() error {
		return a.cdc.UnmarshalBinaryLengthPrefixed(raw, &msg)
	})
	if err != nil {
		return nil, err
	}
	env := &txkit.Envelope{Payload: fromAminoPayload(&msg.Payload)}
	for _, ap := range msg.Approvals {
		env.Approvals = append(env.Approvals, txkit.Approval{
			PublicKey: ap.PubKey,
			Signature: ap.Signature,
		})
	}
	return env, nil
}

// recoverDecode runs decode, which may panic on malformed input, and
// reports any failure as ErrMalformedTx.
func recoverDecode(decode func() error) (err error) {
	defer func() {
		if err != nil && !errors.ErrMalformedTx.Is(err) {
			err = errors.Wrapf(errors.ErrMalformedTx, "amino: %s", err)
		}
	}()
	defer errors.Recover(&err)
	return decode()
}

// Wire representation. Fields are flat so that amino never has to deal with
// nil pointers.
type aminoEnvelope struct {
	Payload   aminoPayload
	Approvals []aminoApproval
}

type aminoPayload struct {
	Type           string
	ChainID        string
	Source         string
	GasLimit       uint64
	GasPrice       uint64
	Timestamp      int64
	Owners         []string
	TransferTo     string
	TransferAmount string
	TransferID     uint64
}

type aminoApproval struct {
	PubKey    []byte
	Signature []byte
}

func toAminoPayload(p *txkit.Payload) aminoPayload {
	msg := aminoPayload{
		Type:      string(p.Type),
		ChainID:   p.ChainID,
		Source:    p.Source,
		GasLimit:  p.Fee.GasLimit,
		GasPrice:  p.Fee.GasPrice,
		Timestamp: p.Timestamp,
		Owners:    p.Owners,
	}
	if t := p.Transfer; t != nil {
		msg.TransferTo = t.To
		msg.TransferAmount = t.Amount
		msg.TransferID = t.ID
	}
	return msg
}

func fromAminoPayload(msg *aminoPayload) txkit.Payload {
	p := txkit.Payload{
		Type:      txkit.TxType(msg.Type),
		ChainID:   msg.ChainID,
		Source:    msg.Source,
		Fee:       txkit.Fee{GasLimit: msg.GasLimit, GasPrice: msg.GasPrice},
		Timestamp: msg.Timestamp,
		Owners:    msg.Owners,
	}
	if msg.TransferTo != "" || msg.TransferAmount != "" || msg.TransferID != 0 {
		p.Transfer = &txkit.TransferMsg{
			To:     msg.TransferTo,
			Amount: msg.TransferAmount,
			ID:     msg.TransferID,
		}
	}
	return p.Clone()
}
