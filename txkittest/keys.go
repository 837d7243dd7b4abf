package txkittest

import (
	"fmt"
	"testing"

	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/network"
)

// NewKey returns a new random ed25519 key pair.
func NewKey(t testing.TB) *crypto.KeyPair {
	t.Helper()
	kp, err := crypto.GenerateKeyPair(crypto.Ed25519)
	if err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	return kp
}

// SeedKey returns a key pair deterministically derived from given seed.
func SeedKey(t testing.TB, algo crypto.Algorithm, seed string) *crypto.KeyPair {
	t.Helper()
	kp, err := crypto.KeyPairFromSeed(algo, []byte(seed))
	if err != nil {
		t.Fatalf("cannot create %s key from seed %q: %s", algo, seed, err)
	}
	return kp
}

// Keys returns n distinct deterministic key pairs.
func Keys(t testing.TB, algo crypto.Algorithm, n int) []*crypto.KeyPair {
	t.Helper()
	keys := make([]*crypto.KeyPair, n)
	for i := range keys {
		keys[i] = SeedKey(t, algo, fmt.Sprintf("key-%d", i))
	}
	return keys
}

// PublicOnly returns a copy of the key pair without the private key.
func PublicOnly(t testing.TB, kp *crypto.KeyPair) *crypto.KeyPair {
	t.Helper()
	pub, err := crypto.NewKeyPair(kp.PublicKey(), nil)
	if err != nil {
		t.Fatalf("cannot create public key pair: %s", err)
	}
	return pub
}

// Address returns the address of the key on given network.
func Address(t testing.TB, n *network.Network, kp *crypto.KeyPair) string {
	t.Helper()
	addr, err := n.Addresses.FromPublicKey(kp.PublicKey())
	if err != nil {
		t.Fatalf("cannot create address: %s", err)
	}
	return addr
}
