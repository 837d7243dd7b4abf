package network

import (
	"testing"
	"time"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/errors"
	"github.com/iov-one/txkit/txkittest/assert"
)

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		Network *Network
		Field   string
		WantErr *errors.Error
	}{
		"hex key network": {
			Network: HexKey("local", "local-chain"),
		},
		"bech32 network": {
			Network: Bech32("testnet", "iov-testnet", "tiov"),
		},
		"missing id": {
			Network: HexKey("", "local-chain"),
			Field:   "ID",
			WantErr: errors.ErrInvalidInput,
		},
		"invalid chain id": {
			Network: HexKey("local", "bad"),
			Field:   "ChainID",
			WantErr: errors.ErrInvalidInput,
		},
		"no types": {
			Network: HexKey("local", "local-chain", WithTypes()),
			Field:   "Types",
			WantErr: errors.ErrInvalidInput,
		},
		"unknown type": {
			Network: HexKey("local", "local-chain", WithTypes("vote")),
			Field:   "Types",
			WantErr: errors.ErrUnsupportedTxType,
		},
		"no codec": {
			Network: HexKey("local", "local-chain", WithCodec(nil)),
			Field:   "Codec",
			WantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Network.Validate()
			if tc.WantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.Field, tc.WantErr)
		})
	}
}

func TestSupports(t *testing.T) {
	hex := HexKey("local", "local-chain")
	if !hex.Supports(txkit.WalletInitialization) || !hex.Supports(txkit.Transfer) {
		t.Fatal("hex key network must support all types")
	}
	b := Bech32("testnet", "iov-testnet", "tiov")
	if b.Supports(txkit.WalletInitialization) {
		t.Fatal("bech32 network must not support wallet initialization")
	}
}

func TestNow(t *testing.T) {
	at := time.Date(2019, 4, 11, 16, 26, 40, 123456789, time.UTC)
	n := HexKey("local", "local-chain", WithClock(func() time.Time { return at }))
	if got, want := n.Now(), int64(1555000000123); got != want {
		t.Fatalf("want %d, got %d", want, got)
	}
}
