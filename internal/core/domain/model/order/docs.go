// Package order provides the Order entity processed by the rule engine.
//
// The package includes:
//   - Order: the mutable record threaded through a processing pass
//   - Type: the order category (A, B, C or anything else)
//   - Status: the outcome assigned by the processing rules
//   - Priority: low or high, derived from the amount
//
// Key business rules:
//   - Orders carry a non-negative amount
//   - A new order starts with status "new" and priority "low"
//   - Status and priority are the only fields mutated after construction
//
// An Order is owned by exactly one processing pass; it is read from the store,
// mutated in memory and its final status and priority are written back.
package order
