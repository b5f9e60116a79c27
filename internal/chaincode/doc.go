// Package chaincode hosts the farm twin contract on Hyperledger Fabric.
//
// [FarmContract] exposes the same operations as the HTTP contract host.
// Every transaction builds a [service.Contract] over the transaction's world
// state, so ledger writes commit or roll back with the Fabric transaction.
// The caller is the client identity of the proposal, hashed into the owner
// ID space, and the clock is the transaction timestamp, which keeps every
// endorsing peer on the same result.
//
// Arguments and results that are not scalars travel as JSON strings. Binary
// values (ciphertexts, deltas) are base64 inside that JSON.
package chaincode
