package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/errors"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new file containing the hex encoded private key is created.
This command fails if the private key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("TXCLI_PRIV_KEY", os.Getenv("HOME")+"/.txcli.priv.key"),
			"Path to the private key file. You can use TXCLI_PRIV_KEY environment variable to set it.")
		algoFl = fl.String("algo", "ed25519", "Signing algorithm, ed25519 or secp256k1.")
	)
	fl.Parse(args)

	algo, err := crypto.ParseAlgorithm(*algoFl)
	if err != nil {
		return err
	}

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Do not allow to overwrite already existing private key. User
		// must manually delete it first to ensure we do not delete
		// such crucial data by an accident (bad command usage).
		return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	kp, err := crypto.GenerateKeyPair(algo)
	if err != nil {
		return fmt.Errorf("cannot generate %s key: %s", algo, err)
	}

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrap(err, "cannot create private key file")
	}
	defer fd.Close()

	if _, err := fmt.Fprintln(fd, kp.PrivateKey().Hex()); err != nil {
		return errors.Wrap(err, "cannot write private key")
	}
	if err := fd.Close(); err != nil {
		return errors.Wrap(err, "cannot close private key file")
	}
	return nil
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the address associated with your private key on the selected
network.
`)
		fl.PrintDefaults()
	}
	var (
		netFl     = addNetworkFlags(fl)
		keyPathFl = fl.String("key", env("TXCLI_PRIV_KEY", os.Getenv("HOME")+"/.txcli.priv.key"),
			"Path to the private key file. You can use TXCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key, err := loadKey(*keyPathFl)
	if err != nil {
		return errors.Wrap(err, "cannot load private key")
	}
	f, err := netFl.factory()
	if err != nil {
		return err
	}
	addr, err := f.Network().Addresses.FromPublicKey(key.PublicKey())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, addr)
	return err
}
