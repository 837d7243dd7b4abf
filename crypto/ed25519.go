package crypto

import (
	"github.com/iov-one/txkit/errors"
	"golang.org/x/crypto/ed25519"
)

func validateEd25519PublicKey(data []byte) error {
	if len(data) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInvalidKey,
			"ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, len(data))
	}
	return nil
}

func validateEd25519Seed(data []byte) error {
	if len(data) != ed25519.SeedSize {
		return errors.Wrapf(errors.ErrInvalidKey,
			"ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(data))
	}
	return nil
}

func ed25519PublicKey(seed []byte) []byte {
	privateKey := ed25519.NewKeyFromSeed(seed)
	pub := privateKey.Public().(ed25519.PublicKey)
	return []byte(pub)
}

func signEd25519(seed, message []byte) []byte {
	return ed25519.Sign(ed25519.NewKeyFromSeed(seed), message)
}

func verifyEd25519(pub, message, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub), message, sig)
}

// genEd25519Seed returns a random new private key seed.
func genEd25519Seed() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidKey, "generate: %s", err)
	}
	return priv.Seed(), nil
}
