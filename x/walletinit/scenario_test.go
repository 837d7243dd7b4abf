package walletinit

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/txkittest"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWalletInitializationScenario(t *testing.T) {
	Convey("Given a network and a funded root account", t, func() {
		net := txkittest.HexKeyNetwork()
		root := txkittest.SeedKey(t, crypto.Secp256k1, "root")
		rootAddr := txkittest.Address(t, net, root)

		var owners []string
		for _, kp := range txkittest.Keys(t, crypto.Ed25519, 3) {
			owners = append(owners, txkittest.Address(t, net, kp))
		}

		b := NewBuilder(net)
		So(b.Fee(txkit.FeeOptions{GasLimit: "10"}), ShouldBeNil)
		// Source is given in lower case, the transaction must use the
		// canonical form.
		So(b.Source(strings.ToLower(rootAddr)), ShouldBeNil)
		for _, o := range owners {
			So(b.Owner(o), ShouldBeNil)
		}
		So(b.Sign(context.Background(), root), ShouldBeNil)

		tx, err := b.Build(context.Background())
		So(err, ShouldBeNil)

		Convey("The view describes the wallet", func() {
			view := tx.ToJSON()
			So(view.Type, ShouldEqual, txkit.WalletInitialization)
			So(view.From, ShouldEqual, rootAddr)
			So(view.Fee.GasLimit, ShouldEqual, "10")
			So(view.SignatureCount, ShouldEqual, 1)
			So(view.Owners, ShouldResemble, owners)
			So(view.Signers, ShouldResemble, []string{root.PublicKey().String()})
		})

		Convey("The JSON form carries the same information", func() {
			raw, err := json.Marshal(tx)
			So(err, ShouldBeNil)
			var view map[string]interface{}
			So(json.Unmarshal(raw, &view), ShouldBeNil)
			So(view["type"], ShouldEqual, "walletInitialization")
			So(view["from"], ShouldEqual, rootAddr)
			So(view["signatureCount"], ShouldEqual, float64(1))
		})

		Convey("An owner can cosign from the serialized form", func() {
			raw, err := tx.ToBroadcastFormat()
			So(err, ShouldBeNil)

			cosigner := txkittest.Keys(t, crypto.Ed25519, 1)[0]
			seeded := NewBuilder(net)
			So(seeded.From(raw), ShouldBeNil)
			So(seeded.Sign(context.Background(), cosigner), ShouldBeNil)

			cosigned, err := seeded.Build(context.Background())
			So(err, ShouldBeNil)
			So(cosigned.ID(), ShouldEqual, tx.ID())
			So(cosigned.SignatureCount(), ShouldEqual, 2)
			So(cosigned.VerifyApprovals(), ShouldBeNil)
		})
	})
}
