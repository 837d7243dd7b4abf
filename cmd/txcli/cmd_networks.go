package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/iov-one/txkit/config"
	"github.com/iov-one/txkit/errors"
	"github.com/tendermint/tendermint/libs/log"
)

func cmdNetworks(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
List all configured networks.
`)
		fl.PrintDefaults()
	}
	var (
		configFl = fl.String("config", env("TXCLI_CONFIG", ""),
			"Path to the configuration file. Default networks are used if not provided. You can use TXCLI_CONFIG environment variable to set it.")
	)
	fl.Parse(args)

	conf, err := config.Load(*configFl)
	if err != nil {
		return errors.Wrap(err, "cannot load configuration")
	}
	registry, err := conf.Registry(log.NewNopLogger())
	if err != nil {
		return errors.Wrap(err, "cannot register networks")
	}

	w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCHAIN\tTYPES\tDEFAULT")
	for _, id := range registry.Networks() {
		f, err := registry.Factory(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot get %q network: %s\n", id, err)
			continue
		}
		net := f.Network()
		def := ""
		if id == conf.Network {
			def = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", id, net.ChainID, net.Types, def)
	}
	return w.Flush()
}
