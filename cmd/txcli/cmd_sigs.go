package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/errors"
)

func cmdSignTransaction(
	input io.Reader,
	output io.Writer,
	args []string,
) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.
`)
		fl.PrintDefaults()
	}
	var (
		netFl     = addNetworkFlags(fl)
		keyPathFl = fl.String("key", env("TXCLI_PRIV_KEY", ""),
			"Path to the private key file that transaction should be signed with. You can use TXCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	if *keyPathFl == "" {
		return errors.Wrap(errors.ErrInvalidInput, "private key is required")
	}
	key, err := loadKey(*keyPathFl)
	if err != nil {
		return errors.Wrap(err, "cannot load private key")
	}

	raw, err := readTx(input)
	if err != nil {
		return err
	}
	f, err := netFl.factory()
	if err != nil {
		return err
	}
	b, err := f.From(raw)
	if err != nil {
		return errors.Wrap(err, "cannot deserialize transaction")
	}

	ctx := context.Background()
	if err := b.Sign(ctx, key); err != nil {
		return errors.Wrap(err, "cannot sign transaction")
	}
	tx, err := b.Build(ctx)
	if err != nil {
		return errors.Wrap(err, "cannot build transaction")
	}
	_, err = writeTx(output, tx)
	return err
}

func cmdWithSignature(
	input io.Reader,
	output io.Writer,
	args []string,
) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Attach a signature created outside of this program. The signature must be
created over the transaction ID, as displayed by the view command.
`)
		fl.PrintDefaults()
	}
	var (
		netFl    = addNetworkFlags(fl)
		pubKeyFl = fl.String("pubkey", "", "Hex encoded public key of the signer. Required.")
		sigFl    = flHex(fl, "sig", "", "Hex encoded signature. Required.")
	)
	fl.Parse(args)

	key, err := crypto.KeyPairFromPublic(*pubKeyFl)
	if err != nil {
		return errors.Wrap(err, "pubkey")
	}

	raw, err := readTx(input)
	if err != nil {
		return err
	}
	f, err := netFl.factory()
	if err != nil {
		return err
	}
	b, err := f.From(raw)
	if err != nil {
		return errors.Wrap(err, "cannot deserialize transaction")
	}
	if err := b.Signature(*sigFl, key); err != nil {
		return errors.Wrap(err, "sig")
	}
	tx, err := b.Build(context.Background())
	if err != nil {
		return errors.Wrap(err, "cannot build transaction")
	}
	_, err = writeTx(output, tx)
	return err
}
