package crypto

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/txkit/errors"
	"golang.org/x/crypto/blake2b"
)

const (
	secp256k1PublicKeySize = 33
	secp256k1SecretSize    = 32
)

func validateSecp256k1PublicKey(data []byte) error {
	if len(data) != secp256k1PublicKeySize {
		return errors.Wrapf(errors.ErrInvalidKey,
			"compressed secp256k1 public key must be %d bytes, got %d", secp256k1PublicKeySize, len(data))
	}
	// Parsing ensures the point is on the curve.
	if _, err := btcec.ParsePubKey(data, btcec.S256()); err != nil {
		return errors.Wrapf(errors.ErrInvalidKey, "secp256k1: %s", err)
	}
	return nil
}

func validateSecp256k1Secret(data []byte) error {
	if len(data) != secp256k1SecretSize {
		return errors.Wrapf(errors.ErrInvalidKey,
			"secp256k1 secret must be %d bytes, got %d", secp256k1SecretSize, len(data))
	}
	d := new(big.Int).SetBytes(data)
	if d.Sign() == 0 || d.Cmp(btcec.S256().N) >= 0 {
		return errors.Wrap(errors.ErrInvalidKey, "secp256k1 secret out of range")
	}
	return nil
}

func secp256k1PublicKey(secret []byte) []byte {
	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), secret)
	return pub.SerializeCompressed()
}

// signSecp256k1 signs the blake2b-256 digest of the message. Nonce
// generation follows RFC6979 so the result is deterministic. The signature
// is returned in the compact R || S form.
func signSecp256k1(secret, message []byte) ([]byte, error) {
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), secret)
	digest := blake2b.Sum256(message)
	sig, err := priv.Sign(digest[:])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidSignature, "secp256k1: %s", err)
	}
	out := make([]byte, SignatureSize)
	r, s := sig.R.Bytes(), sig.S.Bytes()
	copy(out[32-len(r):32], r)
	copy(out[64-len(s):], s)
	return out, nil
}

func verifySecp256k1(pub, message, sig []byte) bool {
	key, err := btcec.ParsePubKey(pub, btcec.S256())
	if err != nil {
		return false
	}
	signature := &btcec.Signature{
		R: new(big.Int).SetBytes(sig[:32]),
		S: new(big.Int).SetBytes(sig[32:]),
	}
	digest := blake2b.Sum256(message)
	return signature.Verify(digest[:], key)
}

// genSecp256k1Secret returns a random new private key scalar.
func genSecp256k1Secret() ([]byte, error) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidKey, "generate: %s", err)
	}
	return priv.Serialize(), nil
}
