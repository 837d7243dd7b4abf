package crypto

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/iov-one/txkit/errors"
)

// Algorithm identifies a signing scheme. Its value is used as the first byte
// of the binary representation of a key.
type Algorithm byte

const (
	Ed25519   Algorithm = 0x01
	Secp256k1 Algorithm = 0x02
)

func (a Algorithm) String() string {
	switch a {
	case Ed25519:
		return "ed25519"
	case Secp256k1:
		return "secp256k1"
	default:
		return "unknown"
	}
}

// ParseAlgorithm returns the algorithm for its human readable name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "ed25519":
		return Ed25519, nil
	case "secp256k1":
		return Secp256k1, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidKey, "unknown algorithm %q", name)
	}
}

// PublicKey is a public key of any supported algorithm. Use it to verify
// signatures or to derive an address.
type PublicKey struct {
	algo Algorithm
	data []byte
}

// PublicKeyFromBytes decodes a tagged binary representation of a public key:
// one byte algorithm identifier followed by the key itself.
func PublicKeyFromBytes(raw []byte) (*PublicKey, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidKey, "empty")
	}
	algo, data := Algorithm(raw[0]), raw[1:]
	var err error
	switch algo {
	case Ed25519:
		err = validateEd25519PublicKey(data)
	case Secp256k1:
		err = validateSecp256k1PublicKey(data)
	default:
		err = errors.Wrapf(errors.ErrInvalidKey, "unknown algorithm tag %#x", raw[0])
	}
	if err != nil {
		return nil, err
	}
	return &PublicKey{algo: algo, data: append([]byte(nil), data...)}, nil
}

// ParsePublicKey decodes a hex encoded, tagged public key. Decoding is case
// insensitive.
func ParsePublicKey(raw string) (*PublicKey, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidKey, "hex: %s", err)
	}
	return PublicKeyFromBytes(b)
}

// ValidateKey returns ErrInvalidKey unless given value is a valid hex
// encoded, tagged public or private key.
func ValidateKey(raw string) error {
	_, pubErr := ParsePublicKey(raw)
	if pubErr == nil {
		return nil
	}
	if _, err := ParsePrivateKey(raw); err == nil {
		return nil
	}
	return pubErr
}

// Algorithm returns the signing scheme of this key.
func (p *PublicKey) Algorithm() Algorithm {
	return p.algo
}

// Bytes returns the tagged binary representation of the key.
func (p *PublicKey) Bytes() []byte {
	b := make([]byte, 0, len(p.data)+1)
	b = append(b, byte(p.algo))
	return append(b, p.data...)
}

// String returns the canonical text form: upper case hex of the tagged
// binary representation.
func (p *PublicKey) String() string {
	if p == nil {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(p.Bytes()))
}

// Equals returns true if both keys are of the same algorithm and hold the
// same key material.
func (p *PublicKey) Equals(o *PublicKey) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.algo == o.algo && bytes.Equal(p.data, o.data)
}

// Verify returns true if sig is a valid signature of the message created
// with the private key matching this public key.
func (p *PublicKey) Verify(message, sig []byte) bool {
	if p == nil || len(sig) != SignatureSize {
		return false
	}
	switch p.algo {
	case Ed25519:
		return verifyEd25519(p.data, message, sig)
	case Secp256k1:
		return verifySecp256k1(p.data, message, sig)
	}
	return false
}

// SignatureSize is the length of a signature produced by any of the
// supported algorithms.
const SignatureSize = 64

// PrivateKey is a signing key of any supported algorithm.
type PrivateKey struct {
	algo Algorithm
	data []byte
}

// PrivateKeyFromBytes decodes a tagged binary representation of a private
// key: one byte algorithm identifier followed by a 32 byte secret. For
// ed25519 the secret is the seed, for secp256k1 it is the scalar.
func PrivateKeyFromBytes(raw []byte) (*PrivateKey, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidKey, "empty")
	}
	algo, data := Algorithm(raw[0]), raw[1:]
	var err error
	switch algo {
	case Ed25519:
		err = validateEd25519Seed(data)
	case Secp256k1:
		err = validateSecp256k1Secret(data)
	default:
		err = errors.Wrapf(errors.ErrInvalidKey, "unknown algorithm tag %#x", raw[0])
	}
	if err != nil {
		return nil, err
	}
	return &PrivateKey{algo: algo, data: append([]byte(nil), data...)}, nil
}

// ParsePrivateKey decodes a hex encoded, tagged private key.
func ParsePrivateKey(raw string) (*PrivateKey, error) {
	b, err := hex.DecodeString(strings.TrimSpace(strings.TrimPrefix(raw, "0x")))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidKey, "hex: %s", err)
	}
	return PrivateKeyFromBytes(b)
}

// Algorithm returns the signing scheme of this key.
func (k *PrivateKey) Algorithm() Algorithm {
	return k.algo
}

// Bytes returns the tagged binary representation of the key.
func (k *PrivateKey) Bytes() []byte {
	b := make([]byte, 0, len(k.data)+1)
	b = append(b, byte(k.algo))
	return append(b, k.data...)
}

// Hex returns the hex encoded, tagged representation of the key. This is the
// format ParsePrivateKey accepts.
func (k *PrivateKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

// PublicKey returns the public key matching this private key.
func (k *PrivateKey) PublicKey() *PublicKey {
	var data []byte
	switch k.algo {
	case Ed25519:
		data = ed25519PublicKey(k.data)
	case Secp256k1:
		data = secp256k1PublicKey(k.data)
	}
	return &PublicKey{algo: k.algo, data: data}
}

// Sign returns a deterministic signature of the message.
func (k *PrivateKey) Sign(message []byte) ([]byte, error) {
	switch k.algo {
	case Ed25519:
		return signEd25519(k.data, message), nil
	case Secp256k1:
		return signSecp256k1(k.data, message)
	}
	return nil, errors.Wrapf(errors.ErrInvalidKey, "unknown algorithm %s", k.algo)
}
