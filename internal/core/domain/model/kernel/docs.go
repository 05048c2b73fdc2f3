// Package kernel provides core domain primitives for the in-store ordering
// system. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//
// In this system UUIDs identify shopper devices (the clientId attached to a
// draft order); order codes and line-item ids are strings assigned by the
// remote order service and are modeled where they belong, on the order
// aggregate itself.
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
