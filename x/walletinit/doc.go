/*
Package walletinit implements the builder of wallet initialization
transactions.

A wallet initialization creates a multisignature wallet governed by a quorum
of exactly three owners. Owners are validated as they are added: the address
must be valid on the network, no owner can be added twice and no more than
three owners are accepted. Whether exactly three owners were provided is
checked only when the transaction is built, after the fee and the source.

Signers are not required to be owners. The builder records every approval it
is given, the chain decides which of them count.
*/
package walletinit
