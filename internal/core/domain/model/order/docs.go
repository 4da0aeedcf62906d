// Package order holds the lab order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root (lab, patient, customer, services, owner)
//   - State and CheckTransition: the forward-only lifecycle CREATED -> ANALYSIS -> COMPLETED
//   - Status: the soft-delete flag (ACTIVE, DELETED), independent from State
//   - Service: one requested analysis with its value and PENDING/DONE status
//
// Key business rules:
//   - A new order starts CREATED and ACTIVE
//   - The sum of service values must be greater than 0
//   - State moves exactly one step forward; repeating the current state is a no-op
//   - COMPLETED is terminal
package order
