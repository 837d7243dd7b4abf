package codec

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/errors"
)

// Proto is a codec that serializes transactions using the protobuf wire
// format. It is equivalent to the following schema:
//
//	message Envelope {
//	  Payload payload = 1;
//	  repeated Approval approvals = 2;
//	}
//	message Payload {
//	  string type = 1;
//	  string chain_id = 2;
//	  string source = 3;
//	  Fee fee = 4;
//	  int64 timestamp = 5;
//	  repeated string owners = 6;
//	  Transfer transfer = 7;
//	}
//	message Fee {
//	  uint64 gas_limit = 1;
//	  uint64 gas_price = 2;
//	}
//	message Transfer {
//	  string to = 1;
//	  string amount = 2;
//	  uint64 id = 3;
//	}
//	message Approval {
//	  bytes pub_key = 1;
//	  bytes signature = 2;
//	}
//
// Decoding is strict: unknown fields, wrong wire types and truncated input
// are rejected.
type Proto struct{}

var _ txkit.Codec = Proto{}

// NewProto returns a protobuf wire format codec.
func NewProto() Proto {
	return Proto{}
}

func (Proto) MarshalPayload(p *txkit.Payload) ([]byte, error) {
	raw, err := proto.Marshal(toProtoPayload(p))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "proto: %s", err)
	}
	return raw, nil
}

func (Proto) MarshalEnvelope(e *txkit.Envelope) ([]byte, error) {
	msg := ProtoEnvelope{Payload: toProtoPayload(&e.Payload)}
	for _, a := range e.Approvals {
		msg.Approvals = append(msg.Approvals, &ProtoApproval{
			PubKey:    a.PublicKey,
			Signature: a.Signature,
		})
	}
	raw, err := proto.Marshal(&msg)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "proto: %s", err)
	}
	return raw, nil
}

func (Proto) UnmarshalEnvelope(raw []byte) (*txkit.Envelope, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrMalformedTx, "empty")
	}
	var msg ProtoEnvelope
	if err := proto.Unmarshal(raw, &msg); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedTx, "proto: %s", err)
	}
	if err := msg.checkUnrecognized(); err != nil {
		return nil, err
	}
	if msg.Payload == nil {
		msg.Payload = &ProtoPayload{}
	}

	env := txkit.Envelope{Payload: fromProtoPayload(msg.Payload)}
	for i, a := range msg.Approvals {
		if a == nil {
			return nil, errors.Wrapf(errors.ErrMalformedTx, "approval %d: missing", i)
		}
		env.Approvals = append(env.Approvals, txkit.Approval{
			PublicKey: a.PubKey,
			Signature: a.Signature,
		})
	}
	return &env, nil
}

func toProtoPayload(p *txkit.Payload) *ProtoPayload {
	msg := &ProtoPayload{
		Type:      string(p.Type),
		ChainID:   p.ChainID,
		Source:    p.Source,
		Fee:       &ProtoFee{GasLimit: p.Fee.GasLimit, GasPrice: p.Fee.GasPrice},
		Timestamp: p.Timestamp,
		Owners:    p.Owners,
	}
	if t := p.Transfer; t != nil {
		msg.Transfer = &ProtoTransfer{To: t.To, Amount: t.Amount, ID: t.ID}
	}
	return msg
}

func fromProtoPayload(msg *ProtoPayload) txkit.Payload {
	p := txkit.Payload{
		Type:      txkit.TxType(msg.Type),
		ChainID:   msg.ChainID,
		Source:    msg.Source,
		Timestamp: msg.Timestamp,
		Owners:    msg.Owners,
	}
	if f := msg.Fee; f != nil {
		p.Fee = txkit.Fee{GasLimit: f.GasLimit, GasPrice: f.GasPrice}
	}
	if t := msg.Transfer; t != nil {
		p.Transfer = &txkit.TransferMsg{To: t.To, Amount: t.Amount, ID: t.ID}
	}
	return p.Clone()
}

// Wire messages. Fields that cannot be decoded into a known field, including
// fields with an unexpected wire type, are kept in XXX_unrecognized.

type ProtoEnvelope struct {
	Payload          *ProtoPayload    `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	Approvals        []*ProtoApproval `protobuf:"bytes,2,rep,name=approvals,proto3" json:"approvals,omitempty"`
	XXX_unrecognized []byte           `json:"-"`
}

func (m *ProtoEnvelope) Reset()         { *m = ProtoEnvelope{} }
func (m *ProtoEnvelope) String() string { return proto.CompactTextString(m) }
func (*ProtoEnvelope) ProtoMessage()    {}

func (m *ProtoEnvelope) checkUnrecognized() error {
	if len(m.XXX_unrecognized) != 0 {
		return unrecognized("envelope")
	}
	if m.Payload != nil {
		if err := m.Payload.checkUnrecognized(); err != nil {
			return err
		}
	}
	for _, a := range m.Approvals {
		if a != nil && len(a.XXX_unrecognized) != 0 {
			return unrecognized("approval")
		}
	}
	return nil
}

type ProtoPayload struct {
	Type             string         `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	ChainID          string         `protobuf:"bytes,2,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	Source           string         `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	Fee              *ProtoFee      `protobuf:"bytes,4,opt,name=fee,proto3" json:"fee,omitempty"`
	Timestamp        int64          `protobuf:"varint,5,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Owners           []string       `protobuf:"bytes,6,rep,name=owners,proto3" json:"owners,omitempty"`
	Transfer         *ProtoTransfer `protobuf:"bytes,7,opt,name=transfer,proto3" json:"transfer,omitempty"`
	XXX_unrecognized []byte         `json:"-"`
}

func (m *ProtoPayload) Reset()         { *m = ProtoPayload{} }
func (m *ProtoPayload) String() string { return proto.CompactTextString(m) }
func (*ProtoPayload) ProtoMessage()    {}

func (m *ProtoPayload) checkUnrecognized() error {
	switch {
	case len(m.XXX_unrecognized) != 0:
		return unrecognized("payload")
	case m.Fee != nil && len(m.Fee.XXX_unrecognized) != 0:
		return unrecognized("fee")
	case m.Transfer != nil && len(m.Transfer.XXX_unrecognized) != 0:
		return unrecognized("transfer")
	}
	return nil
}

type ProtoFee struct {
	GasLimit         uint64 `protobuf:"varint,1,opt,name=gas_limit,json=gasLimit,proto3" json:"gas_limit,omitempty"`
	GasPrice         uint64 `protobuf:"varint,2,opt,name=gas_price,json=gasPrice,proto3" json:"gas_price,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *ProtoFee) Reset()         { *m = ProtoFee{} }
func (m *ProtoFee) String() string { return proto.CompactTextString(m) }
func (*ProtoFee) ProtoMessage()    {}

type ProtoTransfer struct {
	To               string `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount           string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	ID               uint64 `protobuf:"varint,3,opt,name=id,proto3" json:"id,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *ProtoTransfer) Reset()         { *m = ProtoTransfer{} }
func (m *ProtoTransfer) String() string { return proto.CompactTextString(m) }
func (*ProtoTransfer) ProtoMessage()    {}

type ProtoApproval struct {
	PubKey           []byte `protobuf:"bytes,1,opt,name=pub_key,json=pubKey,proto3" json:"pub_key,omitempty"`
	Signature        []byte `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *ProtoApproval) Reset()         { *m = ProtoApproval{} }
func (m *ProtoApproval) String() string { return proto.CompactTextString(m) }
func (*ProtoApproval) ProtoMessage()    {}

func unrecognized(msg string) error {
	return errors.Wrapf(errors.ErrMalformedTx, "unknown %s field", msg)
}
