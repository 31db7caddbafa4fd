// Package services holds the routing and dispatch engine.
//
// The package includes:
//   - RoutePlanner: classifies a pickup/delivery pair and builds the leg chain
//   - CourierDispatcher: filters and ranks couriers for a leg without mutating them
//   - ETAEstimator: turns a delivery tier into an expected arrival time
//
// Every service is a value type with injected tables and no shared mutable state,
// so planning and dispatch for independent shipments run in parallel.
package services
