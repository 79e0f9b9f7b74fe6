// Package services provides domain services that operate on whole aggregates.
//
// The package includes:
//   - OrderValidator: holistic, read-only validation of an order state,
//     used by the order update path to vet candidate states before any
//     mutation is applied.
package services
