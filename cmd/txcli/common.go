package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/iov-one/txkit"
	"github.com/iov-one/txkit/config"
	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/errors"
	"github.com/iov-one/txkit/factory"
)

// writeTx serializes the transaction using the broadcast format of its
// network. First bytes written contain the information how much space the
// transaction takes. Size information is required to be able to stream the
// messages.
func writeTx(w io.Writer, tx *txkit.Transaction) (int, error) {
	b, err := tx.ToBroadcastFormat()
	if err != nil {
		return 0, err
	}

	var size [txHeaderSize]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(b)))

	if n, err := w.Write(size[:]); err != nil {
		return n, err
	}
	if n, err := w.Write(b); err != nil {
		return n + txHeaderSize, err
	}
	return txHeaderSize + len(b), nil
}

// readTx returns the broadcast format of a transaction written by writeTx.
func readTx(r io.Reader) ([]byte, error) {
	var size [txHeaderSize]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(errors.ErrMalformedTx, "no input data")
		}
		return nil, errors.Wrapf(errors.ErrMalformedTx, "cannot read header: %s", err)
	}
	msgSize := binary.BigEndian.Uint32(size[:])
	if msgSize > maxTxSize {
		return nil, errors.Wrapf(errors.ErrMalformedTx, "transaction of %d bytes is too big", msgSize)
	}
	raw := make([]byte, msgSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedTx, "cannot read transaction: %s", err)
	}
	return raw, nil
}

const (
	txHeaderSize = 4
	maxTxSize    = 1 << 20
)

// networkFlags are the flags that select the network of a command.
type networkFlags struct {
	config  *string
	network *string
}

func addNetworkFlags(fl *flag.FlagSet) networkFlags {
	return networkFlags{
		config: fl.String("config", env("TXCLI_CONFIG", ""),
			"Path to the configuration file. Default networks are used if not provided. You can use TXCLI_CONFIG environment variable to set it."),
		network: fl.String("network", env("TXCLI_NETWORK", ""),
			"ID of the network. Configured default network is used if not provided. You can use TXCLI_NETWORK environment variable to set it."),
	}
}

// factory returns the factory of the selected network.
func (f networkFlags) factory() (*factory.Factory, error) {
	conf, err := config.Load(*f.config)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load configuration")
	}
	logger, err := conf.NewLogger(os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create logger")
	}
	registry, err := conf.Registry(logger)
	if err != nil {
		return nil, errors.Wrap(err, "cannot register networks")
	}
	id := *f.network
	if id == "" {
		id = conf.Network
	}
	return registry.Factory(id)
}

// loadKey reads a key pair from a file containing a hex encoded private key.
func loadKey(path string) (*crypto.KeyPair, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q file: %s", path, err)
	}
	return crypto.KeyPairFromPrivate(strings.TrimSpace(string(raw)))
}
