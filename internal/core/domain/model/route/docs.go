// Package route models shipment legs and the route plan built from them.
//
// Legs are created through a Chain, which numbers them from 1 and threads each leg's
// destination into the next leg's origin. NewPlan re-checks both properties along with
// the leg count for the delivery tier. Leg status changes (assign, start, complete, fail)
// follow the LegStatus state machine.
package route
