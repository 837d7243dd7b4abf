/*
Package txkittest provides fixtures for testing code that builds
transactions: deterministic keys and networks with a fixed clock.
*/
package txkittest

import (
	"time"

	"github.com/iov-one/txkit/network"
)

// Epoch is the time returned by the clock of all test networks.
var Epoch = time.Date(2019, 4, 11, 16, 26, 40, 0, time.UTC)

// FixedClock returns a clock that always returns Epoch.
func FixedClock() func() time.Time {
	return func() time.Time { return Epoch }
}

// HexKeyNetwork returns a hex key network with a fixed clock.
func HexKeyNetwork(opts ...network.Option) *network.Network {
	opts = append([]network.Option{network.WithClock(FixedClock())}, opts...)
	return network.HexKey("local", "local-chain", opts...)
}

// Bech32Network returns a bech32 network using the "tiov" prefix and a fixed
// clock.
func Bech32Network(opts ...network.Option) *network.Network {
	opts = append([]network.Option{network.WithClock(FixedClock())}, opts...)
	return network.Bech32("testnet", "iov-testnet", "tiov", opts...)
}
