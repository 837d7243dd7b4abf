package factory

import (
	"context"
	"sync"
	"testing"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/errors"
	"github.com/iov-one/txkit/network"
	"github.com/iov-one/txkit/txkittest"
	"github.com/iov-one/txkit/x/walletinit"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	Convey("Given a registry with two networks", t, func() {
		r := NewRegistry()
		hex, err := r.Register(txkittest.HexKeyNetwork())
		So(err, ShouldBeNil)
		_, err = r.Register(txkittest.Bech32Network())
		So(err, ShouldBeNil)

		Convey("Networks are listed in order", func() {
			So(r.Networks(), ShouldResemble, []string{"local", "testnet"})
		})

		Convey("Registering the same ID returns the existing factory", func() {
			again, err := r.Register(network.HexKey("local", "another-chain"))
			So(err, ShouldBeNil)
			So(again, ShouldEqual, hex)
			So(again.Network().ChainID, ShouldEqual, "local-chain")
		})

		Convey("Unknown networks are rejected", func() {
			_, err := r.Factory("mainnet")
			So(errors.ErrUnregisteredNetwork.Is(err), ShouldBeTrue)
			_, err = r.BuilderFor("mainnet", txkit.Transfer)
			So(errors.ErrUnregisteredNetwork.Is(err), ShouldBeTrue)
		})

		Convey("Builders are created according to network support", func() {
			b, err := r.BuilderFor("local", txkit.WalletInitialization)
			So(err, ShouldBeNil)
			So(b.Type(), ShouldEqual, txkit.WalletInitialization)

			b, err = r.BuilderFor("testnet", txkit.Transfer)
			So(err, ShouldBeNil)
			So(b.Type(), ShouldEqual, txkit.Transfer)

			b, err = r.BuilderFor("testnet", txkit.WalletInitialization)
			So(errors.ErrUnsupportedTxType.Is(err), ShouldBeTrue)
			So(b, ShouldBeNil)

			_, err = r.BuilderFor("local", "vote")
			So(errors.ErrUnsupportedTxType.Is(err), ShouldBeTrue)
		})
	})
}

func TestRegisterInvalidNetwork(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register(network.HexKey("local", "x"))
	assert.True(t, errors.ErrInvalidInput.Is(err), "%+v", err)
	_, err = r.Register(nil)
	assert.True(t, errors.ErrInvalidInput.Is(err), "%+v", err)
	assert.Empty(t, r.Networks())
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry()

	const workers = 32
	factories := make([]*Factory, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, err := r.Register(txkittest.HexKeyNetwork())
			if err != nil {
				t.Errorf("cannot register: %s", err)
				return
			}
			factories[i] = f
		}(i)
	}
	wg.Wait()

	for i, f := range factories {
		if f != factories[0] {
			t.Fatalf("worker %d got a different factory", i)
		}
	}
	assert.Equal(t, []string{"local"}, r.Networks())
}

func TestFactoryFrom(t *testing.T) {
	r := NewRegistry()
	f, err := r.Register(txkittest.HexKeyNetwork())
	require.NoError(t, err)
	net := f.Network()

	b, err := f.WalletInitializationBuilder()
	require.NoError(t, err)
	require.NoError(t, b.Fee(10))
	signer := txkittest.SeedKey(t, crypto.Ed25519, "signer")
	require.NoError(t, b.Source(txkittest.Address(t, net, signer)))
	for _, kp := range txkittest.Keys(t, crypto.Secp256k1, 3) {
		require.NoError(t, b.Owner(txkittest.Address(t, net, kp)))
	}
	require.NoError(t, b.Sign(context.Background(), signer))
	tx, err := b.Build(context.Background())
	require.NoError(t, err)
	raw, err := tx.ToBroadcastFormat()
	require.NoError(t, err)

	seeded, err := f.From(raw)
	require.NoError(t, err)
	wb, ok := seeded.(*walletinit.Builder)
	require.True(t, ok, "want a wallet initialization builder, got %T", seeded)
	assert.Equal(t, tx.Owners(), wb.Owners())

	_, err = f.From([]byte("garbage"))
	assert.True(t, errors.ErrMalformedTx.Is(err), "%+v", err)
}
