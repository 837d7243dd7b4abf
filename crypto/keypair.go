package crypto

import (
	"github.com/iov-one/txkit/errors"
	"golang.org/x/crypto/blake2b"
)

// KeyPair holds a public key and optionally the matching private key.
//
// A key pair without a private key can only be used to identify the author
// of an externally produced signature, never to sign.
type KeyPair struct {
	pub  *PublicKey
	priv *PrivateKey
}

// NewKeyPair returns a key pair for given keys. Private key is optional. If
// both keys are given, they must match.
func NewKeyPair(pub *PublicKey, priv *PrivateKey) (*KeyPair, error) {
	if pub == nil && priv == nil {
		return nil, errors.Wrap(errors.ErrInvalidKey, "no key")
	}
	if priv == nil {
		return &KeyPair{pub: pub}, nil
	}
	derived := priv.PublicKey()
	if pub != nil && !pub.Equals(derived) {
		return nil, errors.Wrap(errors.ErrInvalidKey, "public key does not match the private key")
	}
	return &KeyPair{pub: derived, priv: priv}, nil
}

// KeyPairFromPublic returns a verification only key pair for a hex encoded,
// tagged public key.
func KeyPairFromPublic(raw string) (*KeyPair, error) {
	pub, err := ParsePublicKey(raw)
	if err != nil {
		return nil, err
	}
	return &KeyPair{pub: pub}, nil
}

// KeyPairFromPrivate returns a signing key pair for a hex encoded, tagged
// private key.
func KeyPairFromPrivate(raw string) (*KeyPair, error) {
	priv, err := ParsePrivateKey(raw)
	if err != nil {
		return nil, err
	}
	return &KeyPair{pub: priv.PublicKey(), priv: priv}, nil
}

// GenerateKeyPair returns a new random key pair.
func GenerateKeyPair(algo Algorithm) (*KeyPair, error) {
	var (
		secret []byte
		err    error
	)
	switch algo {
	case Ed25519:
		secret, err = genEd25519Seed()
	case Secp256k1:
		secret, err = genSecp256k1Secret()
	default:
		return nil, errors.Wrapf(errors.ErrInvalidKey, "unknown algorithm %s", algo)
	}
	if err != nil {
		return nil, err
	}
	return KeyPairFromSecret(algo, secret)
}

// KeyPairFromSecret returns a key pair for a raw, untagged 32 byte secret.
func KeyPairFromSecret(algo Algorithm, secret []byte) (*KeyPair, error) {
	raw := make([]byte, 0, len(secret)+1)
	raw = append(raw, byte(algo))
	priv, err := PrivateKeyFromBytes(append(raw, secret...))
	if err != nil {
		return nil, err
	}
	return &KeyPair{pub: priv.PublicKey(), priv: priv}, nil
}

// KeyPairFromSeed will deterministically generate a key pair from a seed of
// any length. Use if you have a strong source of external randomness, or for
// deterministic keys in test cases.
func KeyPairFromSeed(algo Algorithm, seed []byte) (*KeyPair, error) {
	secret := blake2b.Sum256(seed)
	return KeyPairFromSecret(algo, secret[:])
}

// PublicKey returns the public part of the key pair.
func (kp *KeyPair) PublicKey() *PublicKey {
	return kp.pub
}

// PrivateKey returns the private part of the key pair or nil.
func (kp *KeyPair) PrivateKey() *PrivateKey {
	return kp.priv
}

// HasPrivateKey returns true if this key pair can sign.
func (kp *KeyPair) HasPrivateKey() bool {
	return kp.priv != nil
}

// Sign returns a signature of the message created with the private key.
func (kp *KeyPair) Sign(message []byte) ([]byte, error) {
	if kp.priv == nil {
		return nil, errors.Wrapf(errors.ErrMissingPrivateKey, "key %s", kp.pub)
	}
	return kp.priv.Sign(message)
}
