// Package order provides domain entities and business logic for the in-store
// purchase order. It implements the Order aggregate root with its cart
// mutation engine and lifecycle state machine.
//
// The package includes:
//   - Order: The aggregate root holding the cart and wishlist collections,
//     derived totals, and the lifecycle status
//   - Item: A line item holding product reference, quantity, unit price, variant
//   - Status: A state machine that enforces valid lifecycle transitions
//   - Collection: The wire-level name of the cart or wishlist collection
//
// Key business rules:
//   - A line id lives in exactly one collection at a time
//   - Subtotal sums price × quantity over cart lines only; the wishlist
//     never contributes to totals
//   - Quantities are clamped to [1, 9999] on every client-initiated change;
//     a quantity driven to zero removes the line instead of persisting it
//   - The lifecycle runs draft -> pending -> confirmed -> paid -> ready ->
//     delivered, with paid reachable directly from pending; only the close
//     transition originates on the shopper side, all later ones are adopted
//     from the remote order service
//   - Mutations naming a missing line id are no-ops, never errors
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
