package transfer

import (
	"context"
	"strings"
	"testing"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/errors"
	"github.com/iov-one/txkit/network"
	"github.com/iov-one/txkit/txkittest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]struct {
		Value   interface{}
		Want    string
		WantErr *errors.Error
	}{
		"string":            {Value: "1000", Want: "1000"},
		"trailing zeros":    {Value: "100.00", Want: "100"},
		"exponent":          {Value: "1e3", Want: "1000"},
		"int":               {Value: 5, Want: "5"},
		"uint64":            {Value: uint64(1) << 63, Want: "9223372036854775808"},
		"decimal":           {Value: decimal.NewFromInt(12), Want: "12"},
		"zero":              {Value: "0", WantErr: errors.ErrInvalidAmount},
		"negative":          {Value: -3, WantErr: errors.ErrInvalidAmount},
		"fraction":          {Value: "0.5", WantErr: errors.ErrInvalidAmount},
		"malformed":         {Value: "lots", WantErr: errors.ErrInvalidAmount},
		"unsupported type":  {Value: 1.5, WantErr: errors.ErrInvalidAmount},
		"empty":             {Value: "", WantErr: errors.ErrInvalidAmount},
		"surrounding space": {Value: " 7 ", Want: "7"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseAmount(tc.Value)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if got != tc.Want {
				t.Fatalf("want %q, got %q", tc.Want, got)
			}
		})
	}
}

func TestBuildTransfer(t *testing.T) {
	for name, net := range map[string]*network.Network{
		"hex key": txkittest.HexKeyNetwork(),
		"bech32":  txkittest.Bech32Network(),
	} {
		t.Run(name, func(t *testing.T) {
			sender := txkittest.SeedKey(t, crypto.Ed25519, "sender")
			recipient := txkittest.Address(t, net, txkittest.SeedKey(t, crypto.Secp256k1, "recipient"))

			b := NewBuilder(net)
			require.NoError(t, b.Fee(txkit.FeeOptions{GasLimit: "200", GasPrice: "2"}))
			require.NoError(t, b.Source(txkittest.Address(t, net, sender)))

			_, err := b.Build(context.Background())
			assert.True(t, errors.ErrMissingRecipient.Is(err), "%+v", err)

			require.NoError(t, b.To(strings.ToUpper(recipient)))
			_, err = b.Build(context.Background())
			assert.True(t, errors.ErrInvalidAmount.Is(err), "%+v", err)

			require.NoError(t, b.Amount("1000"))
			require.NoError(t, b.TransferID(42))
			require.NoError(t, b.Sign(context.Background(), sender))

			tx, err := b.Build(context.Background())
			require.NoError(t, err)
			view := tx.ToJSON()
			assert.Equal(t, txkit.Transfer, view.Type)
			assert.Equal(t, recipient, view.To, "recipient must be canonical")
			assert.Equal(t, "1000", view.Amount)
			assert.Equal(t, "42", view.TransferID)
			assert.Empty(t, view.Owners)
			assert.NoError(t, tx.VerifyApprovals())

			raw, err := tx.ToBroadcastFormat()
			require.NoError(t, err)
			seeded := NewBuilder(net)
			require.NoError(t, seeded.From(raw))
			rebuilt, err := seeded.Build(context.Background())
			require.NoError(t, err)
			assert.Equal(t, view, rebuilt.ToJSON())
			assert.Equal(t, tx.Approvals(), rebuilt.Approvals())

			assert.True(t, errors.ErrCannotBeModified.Is(seeded.To(recipient)))
			assert.True(t, errors.ErrCannotBeModified.Is(seeded.Amount(1)))
			assert.True(t, errors.ErrCannotBeModified.Is(seeded.TransferID(1)))
		})
	}
}

func TestInvalidFields(t *testing.T) {
	net := txkittest.Bech32Network()
	b := NewBuilder(net)

	// A hex key address is not valid on a bech32 network.
	hexAddr := txkittest.SeedKey(t, crypto.Ed25519, "x").PublicKey().String()
	assert.True(t, errors.ErrInvalidAddress.Is(b.To(hexAddr)))
	assert.True(t, errors.ErrInvalidAddress.Is(b.Source(hexAddr)))
	assert.True(t, errors.ErrInvalidAmount.Is(b.Amount("-1")))

	err := b.ValidateTransaction()
	assert.True(t, errors.ErrMissingFee.Is(err), "%+v", err)
}

func TestFromRejectsWalletInitialization(t *testing.T) {
	net := txkittest.HexKeyNetwork()
	source := txkittest.Address(t, net, txkittest.NewKey(t))

	raw, err := net.Codec.MarshalEnvelope(&txkit.Envelope{
		Payload: txkit.Payload{
			Type:     txkit.Transfer,
			ChainID:  net.ChainID,
			Source:   source,
			Fee:      txkit.Fee{GasLimit: 1, GasPrice: 1},
			Owners:   []string{source},
			Transfer: &txkit.TransferMsg{To: source, Amount: "1"},
		},
	})
	require.NoError(t, err)

	err = NewBuilder(net).From(raw)
	assert.True(t, errors.ErrMalformedTx.Is(err), "%+v", err)
}
