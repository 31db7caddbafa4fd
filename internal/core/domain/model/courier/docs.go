// Package courier models the fleet: couriers, their vehicles, driver types and
// availability, plus the package-size to vehicle capability table.
//
// Key business rules:
//   - Package size follows weight: up to 5kg small, 20kg medium, 50kg large, else bulk
//   - A courier carries a package only if the vehicle type is allowed for the size and
//     the payload limit covers the weight
//   - Line-haul legs are worked only by line-haul drivers; all-round drivers take
//     pickup and delivery legs
//   - Busy couriers are released when their leg completes or fails
package courier
