package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/txkit/errors"
)

// commands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is an independent runnable that is taking input and
// output being stdin and stdout. Given args are the command line arguments,
// without the program name and the command name, that should be parsed using
// the flag package. A command function is expected to read and write only to
// provided input and output. Use os.Stderr to write error messages.
//
// Keep each command simple and provide a single functionality. Commands are
// combined into a pipeline, for example to create a wallet and collect
// signatures of two owners:
//
//	$ txcli wallet-init -gas-limit 10 -source $ROOT \
//	    -owner $A -owner $B -owner $C \
//	    | txcli sign -key root.key \
//	    | txcli sign -key a.key \
//	    | txcli view
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"keyaddr":        cmdKeyaddr,
	"keygen":         cmdKeygen,
	"networks":       cmdNetworks,
	"sign":           cmdSignTransaction,
	"transfer":       cmdTransfer,
	"version":        cmdVersion,
	"view":           cmdTransactionView,
	"wallet-init":    cmdWalletInit,
	"with-signature": cmdWithSignature,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is an offline transaction builder.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		if code := errors.CodeOf(err); code > 1 {
			fmt.Fprintf(os.Stderr, "%s (code %d)\n", err, code)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, gitHash)
	return nil
}

// gitHash is set during the compilation time.
var gitHash string = "dev"
