package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/errors"
)

func cmdWalletInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that initializes a multisig wallet governed by exactly
three owners. Created transaction is not signed, use the sign or
with-signature command to add approvals.
`)
		fl.PrintDefaults()
	}
	var (
		netFl      = addNetworkFlags(fl)
		gasLimitFl = fl.String("gas-limit", "", "Maximum amount of gas the transaction can consume. Required.")
		gasPriceFl = fl.String("gas-price", "", "Price of a single gas unit. Defaults to 1.")
		sourceFl   = fl.String("source", "", "Address of the account paying for the transaction. Required.")
		ownersFl   = flStrings(fl, "owner", "Address of a wallet owner. Must be given three times.")
	)
	fl.Parse(args)

	f, err := netFl.factory()
	if err != nil {
		return err
	}
	b, err := f.WalletInitializationBuilder()
	if err != nil {
		return err
	}
	if err := b.Fee(txkit.FeeOptions{GasLimit: *gasLimitFl, GasPrice: *gasPriceFl}); err != nil {
		return errors.Wrap(err, "fee")
	}
	if err := b.Source(*sourceFl); err != nil {
		return errors.Wrap(err, "source")
	}
	for _, o := range *ownersFl {
		if err := b.Owner(o); err != nil {
			return errors.Wrap(err, "owner")
		}
	}
	tx, err := b.Build(context.Background())
	if err != nil {
		return errors.Wrap(err, "cannot build transaction")
	}
	_, err = writeTx(output, tx)
	return err
}
