package txkit

import (
	"strings"

	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/crypto/bech32"
	"github.com/iov-one/txkit/errors"
	"golang.org/x/crypto/blake2b"
)

// AddressCodec implements the address format of a network.
type AddressCodec interface {
	// Validate returns ErrInvalidAddress if given value is not a well
	// formed address of this format.
	Validate(addr string) error

	// Canonical returns the single representation used to compare and
	// store addresses. It must be called only with valid addresses.
	Canonical(addr string) string

	// FromPublicKey returns the address owned by given public key.
	FromPublicKey(pub *crypto.PublicKey) (string, error)
}

// ValidateAddress returns ErrInvalidAddress if given address is not valid
// according to the network address format.
func ValidateAddress(codec AddressCodec, addr string) error {
	if addr == "" {
		return errors.Wrap(errors.ErrInvalidAddress, "empty")
	}
	return codec.Validate(addr)
}

// HexKeyAddressCodec is an address format where the address is the hex
// encoded, algorithm tagged public key of the account. Canonical form is upper
// case hex.
type HexKeyAddressCodec struct{}

var _ AddressCodec = HexKeyAddressCodec{}

func (HexKeyAddressCodec) Validate(addr string) error {
	if _, err := crypto.ParsePublicKey(addr); err != nil {
		return errors.Wrapf(errors.ErrInvalidAddress, "%q: %s", addr, err)
	}
	return nil
}

func (HexKeyAddressCodec) Canonical(addr string) string {
	return strings.ToUpper(strings.TrimPrefix(addr, "0x"))
}

func (HexKeyAddressCodec) FromPublicKey(pub *crypto.PublicKey) (string, error) {
	if pub == nil {
		return "", errors.Wrap(errors.ErrInvalidKey, "no public key")
	}
	return pub.String(), nil
}

// Bech32AddressLength is the size of the account hash carried by a bech32
// address.
const Bech32AddressLength = 20

// Bech32AddressCodec is an address format where the address is a bech32
// encoded, truncated blake2b-256 hash of the tagged public key. Canonical form
// is lower case.
type Bech32AddressCodec struct {
	// HRP is the human readable part all addresses must use.
	HRP string
}

var _ AddressCodec = Bech32AddressCodec{}

func (c Bech32AddressCodec) Validate(addr string) error {
	if _, err := bech32.DecodeWithPrefix(addr, c.HRP, Bech32AddressLength); err != nil {
		return errors.Wrapf(errors.ErrInvalidAddress, "%q: %s", addr, err)
	}
	return nil
}

func (Bech32AddressCodec) Canonical(addr string) string {
	return strings.ToLower(addr)
}

func (c Bech32AddressCodec) FromPublicKey(pub *crypto.PublicKey) (string, error) {
	if pub == nil {
		return "", errors.Wrap(errors.ErrInvalidKey, "no public key")
	}
	h := blake2b.Sum256(pub.Bytes())
	return bech32.Encode(c.HRP, h[:Bech32AddressLength])
}
