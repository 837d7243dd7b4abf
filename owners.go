package txkit

import (
	"github.com/iov-one/txkit/errors"
)

const (
	// RequiredOwners is the exact number of owners a wallet
	// initialization transaction must declare.
	RequiredOwners = 3

	// MaxOwners is the maximum size of an owner set.
	MaxOwners = 3
)

// Owners is an insertion ordered set of canonical owner addresses. The zero
// value is not usable, use NewOwners.
type Owners struct {
	max   int
	addrs []string
}

// NewOwners returns an empty owner set that accepts at most max addresses.
func NewOwners(max int) *Owners {
	return &Owners{max: max}
}

// Add validates given address and appends its canonical form to the set.
// The set is not modified if an error is returned.
func (o *Owners) Add(codec AddressCodec, addr string) error {
	if err := ValidateAddress(codec, addr); err != nil {
		return err
	}
	canonical := codec.Canonical(addr)
	for _, a := range o.addrs {
		if a == canonical {
			return errors.Wrapf(errors.ErrDuplicateOwner, "%s", canonical)
		}
	}
	if len(o.addrs) >= o.max {
		return errors.Wrapf(errors.ErrTooManyOwners, "max: %d", o.max)
	}
	o.addrs = append(o.addrs, canonical)
	return nil
}

// Len returns the number of owners in the set.
func (o *Owners) Len() int {
	return len(o.addrs)
}

// List returns a copy of the owner addresses in insertion order.
func (o *Owners) List() []string {
	if len(o.addrs) == 0 {
		return nil
	}
	return append([]string(nil), o.addrs...)
}

// ValidateOwnerCount returns ErrWrongOwnerCount unless the exact number of
// required owners is present.
func ValidateOwnerCount(owners []string, required int) error {
	if len(owners) != required {
		return errors.ErrWrongOwnerCount.Newf("required: %d, found: %d", required, len(owners))
	}
	return nil
}

// ValidateOwners checks a complete owner list, as found in a decoded
// transaction. Each address must be valid and unique and the list must have
// the required size.
func ValidateOwners(codec AddressCodec, owners []string, required, max int) error {
	set := NewOwners(max)
	for _, a := range owners {
		if err := set.Add(codec, a); err != nil {
			return err
		}
	}
	return ValidateOwnerCount(owners, required)
}
