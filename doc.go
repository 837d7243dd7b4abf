/*
Package txkit builds and signs transactions offline, before they are sent to
a blockchain network.

A transaction is assembled with a builder obtained from the factory of a
network. Builders validate every value as soon as it is set, collect the
approvals of all required signers and produce an immutable Transaction.
A built transaction can be serialized into the broadcast format of its
network and later used to seed a new builder, so that signatures can be
collected by different parties in separate processes.

Supported transaction types live in the x/ directory.
*/
package txkit
