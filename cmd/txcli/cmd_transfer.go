package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/errors"
)

func cmdTransfer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that transfers funds from the source account to the
recipient. Created transaction is not signed.
`)
		fl.PrintDefaults()
	}
	var (
		netFl      = addNetworkFlags(fl)
		gasLimitFl = fl.String("gas-limit", "", "Maximum amount of gas the transaction can consume. Required.")
		gasPriceFl = fl.String("gas-price", "", "Price of a single gas unit. Defaults to 1.")
		sourceFl   = fl.String("source", "", "Address of the sender. Required.")
		toFl       = fl.String("to", "", "Address of the recipient. Required.")
		amountFl   = fl.String("amount", "", "Amount of funds to transfer. Required.")
		idFl       = fl.Uint64("id", 0, "Optional reference of the transfer.")
	)
	fl.Parse(args)

	f, err := netFl.factory()
	if err != nil {
		return err
	}
	b, err := f.TransferBuilder()
	if err != nil {
		return err
	}
	if err := b.Fee(txkit.FeeOptions{GasLimit: *gasLimitFl, GasPrice: *gasPriceFl}); err != nil {
		return errors.Wrap(err, "fee")
	}
	if err := b.Source(*sourceFl); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := b.To(*toFl); err != nil {
		return errors.Wrap(err, "to")
	}
	if err := b.Amount(*amountFl); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := b.TransferID(*idFl); err != nil {
		return errors.Wrap(err, "id")
	}
	tx, err := b.Build(context.Background())
	if err != nil {
		return errors.Wrap(err, "cannot build transaction")
	}
	_, err = writeTx(output, tx)
	return err
}
