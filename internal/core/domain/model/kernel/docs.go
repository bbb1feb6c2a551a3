// Package kernel provides core domain primitives and utilities for the atelier
// order-management system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Role: The closed set of actor roles participating in the order workflow
//   - Actor: The acting identity (user id plus role) attached to every operation
//   - Money: Integer-kurus monetary amounts for order pricing
//   - AddBusinessDays: weekend-skipping date arithmetic for production scheduling
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
