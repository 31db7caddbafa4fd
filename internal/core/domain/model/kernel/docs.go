// Package kernel provides the shared value objects of the routing engine.
//
// The package includes:
//   - UUID: identifier for couriers, shipments and legs' bindings
//   - GeoPoint: validated latitude/longitude pair
//   - Location: free-text address with optional city, province and coordinates
//
// All values are immutable after construction and safe for concurrent use.
package kernel
