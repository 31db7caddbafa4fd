// Package shipment holds the Shipment aggregate: a planned route with its fee quote,
// estimated delivery time and per-leg courier bindings. Leg changes go through the
// aggregate so that legs start in order.
package shipment
