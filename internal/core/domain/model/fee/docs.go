// Package fee prices shipments by shipping zone.
package fee
