package txkit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/txkit/crypto"
	"github.com/iov-one/txkit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func owners(t testing.TB, n int) []string {
	t.Helper()
	var addrs []string
	for i := 0; i < n; i++ {
		kp, err := crypto.KeyPairFromSeed(crypto.Ed25519, []byte{byte(i)})
		require.NoError(t, err)
		addrs = append(addrs, kp.PublicKey().String())
	}
	return addrs
}

func TestOwnersAdd(t *testing.T) {
	codec := HexKeyAddressCodec{}
	addrs := owners(t, 4)
	set := NewOwners(MaxOwners)

	require.NoError(t, set.Add(codec, strings.ToLower(addrs[0])))

	err := set.Add(codec, addrs[0])
	assert.True(t, errors.ErrDuplicateOwner.Is(err), "canonical form must be compared: %v", err)
	assert.Equal(t, []string{addrs[0]}, set.List())

	err = set.Add(codec, "invalid")
	assert.True(t, errors.ErrInvalidAddress.Is(err))

	require.NoError(t, set.Add(codec, addrs[1]))
	require.NoError(t, set.Add(codec, addrs[2]))

	err = set.Add(codec, addrs[3])
	assert.True(t, errors.ErrTooManyOwners.Is(err))
	assert.Equal(t, addrs[:3], set.List())
	assert.Equal(t, 3, set.Len())
}

func TestValidateOwnerCount(t *testing.T) {
	addrs := owners(t, 3)
	for n := 0; n < 3; n++ {
		err := ValidateOwnerCount(addrs[:n], RequiredOwners)
		if !errors.ErrWrongOwnerCount.Is(err) {
			t.Fatalf("%d owners: unexpected error: %v", n, err)
		}
		assert.Contains(t, err.Error(), fmt.Sprintf("required: 3, found: %d", n))
	}
	assert.NoError(t, ValidateOwnerCount(addrs, RequiredOwners))
}

func TestValidateOwners(t *testing.T) {
	codec := HexKeyAddressCodec{}
	addrs := owners(t, 3)

	cases := map[string]struct {
		owners  []string
		wantErr *errors.Error
	}{
		"valid":     {owners: addrs},
		"too few":   {owners: addrs[:2], wantErr: errors.ErrWrongOwnerCount},
		"duplicate": {owners: []string{addrs[0], addrs[1], addrs[0]}, wantErr: errors.ErrDuplicateOwner},
		"invalid":   {owners: []string{addrs[0], addrs[1], "xx"}, wantErr: errors.ErrInvalidAddress},
		"too many":  {owners: owners(t, 4), wantErr: errors.ErrTooManyOwners},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := ValidateOwners(codec, tc.owners, RequiredOwners, MaxOwners)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
