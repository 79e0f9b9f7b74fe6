// Package kernel contains the shared value objects of the POS domain model:
// UUID identifiers and precision-safe Money amounts. These are the building
// blocks every aggregate composes; they carry no behavior beyond construction
// validation, value equality, and arithmetic.
package kernel
