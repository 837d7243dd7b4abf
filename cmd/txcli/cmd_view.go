package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/errors"
)

func cmdTransactionView(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Decode and display transaction summary. This command is helpful when receiving
a binary representation of a transaction. Before signing you should check what
kind of operation are you authorizing.
`)
		fl.PrintDefaults()
	}
	var (
		netFl    = addNetworkFlags(fl)
		verifyFl = fl.Bool("verify", false, "Fail if any of the signatures is not valid.")
	)
	fl.Parse(args)

	raw, err := readTx(input)
	if err != nil {
		return err
	}
	f, err := netFl.factory()
	if err != nil {
		return err
	}
	tx, err := txkit.DecodeTransaction(f.Network().Codec, raw)
	if err != nil {
		return errors.Wrap(err, "cannot deserialize transaction")
	}
	if *verifyFl {
		if err := tx.VerifyApprovals(); err != nil {
			return err
		}
	}

	pretty, err := json.MarshalIndent(tx.ToJSON(), "", "\t")
	if err != nil {
		return errors.Wrap(err, "cannot JSON serialize")
	}
	_, err = output.Write(pretty)
	return err
}
