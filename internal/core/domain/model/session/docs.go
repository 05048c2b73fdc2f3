// Package session holds the reconciliation state for one shopper's order:
// the local snapshot of the aggregate plus two sequence counters. Every
// remote call is issued a sequence number before it leaves; a returned
// snapshot is applied only if its sequence is newer than the last one
// applied. Responses that lost a race are discarded, which keeps a slow
// reply from overwriting the result of a later mutation.
//
// Two application modes exist:
//   - Apply adopts a snapshot wholesale, replacing the local aggregate.
//   - ApplyItems replaces only the cart collection, money, and status,
//     keeping locally parked wishlist lines that the snapshot lacks.
package session
