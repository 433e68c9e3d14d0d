// Package services provides the domain rules applied to each order during a
// processing pass.
//
// The package includes:
//   - ExportProcessor: exports type A orders to a CSV sink
//   - ClassificationProcessor: classifies type B orders through the remote service
//   - FlagProcessor: derives the status of type C orders from their flag
//   - PriorityRule: derives the priority of any order from its amount
//
// Every Processor guards on the order type and leaves orders of other types
// untouched, so running all of them in sequence applies exactly one rule.
package services
