// Package bech32 converts binary data to and from the bech32 text format.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/txkit/errors"
)

// Decode returns the human readable part and the payload of a bech32
// string. The checksum is verified.
func Decode(raw string) (hrp string, payload []byte, err error) {
	hrp, words, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInvalidInput, "bech32 decode: %s", err)
	}
	if payload, err = bech32.ConvertBits(words, 5, 8, false); err != nil {
		return "", nil, errors.Wrapf(errors.ErrInvalidInput, "convert bits: %s", err)
	}
	return hrp, payload, nil
}

// DecodeWithPrefix is Decode that also requires the human readable part to be
// want and the payload to be exactly size bytes long.
func DecodeWithPrefix(raw, want string, size int) ([]byte, error) {
	hrp, payload, err := Decode(raw)
	switch {
	case err != nil:
		return nil, err
	case hrp != want:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "want %q prefix, got %q", want, hrp)
	case len(payload) != size:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "want %d bytes, got %d", size, len(payload))
	}
	return payload, nil
}

// Encode returns the bech32 representation of the payload.
func Encode(hrp string, payload []byte) (string, error) {
	words, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidInput, "convert bits: %s", err)
	}
	s, err := bech32.Encode(hrp, words)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidInput, "bech32 encode: %s", err)
	}
	return s, nil
}
