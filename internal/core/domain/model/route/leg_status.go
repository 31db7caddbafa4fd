package route

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// LegStatus is the lifecycle state of a single leg.
//
// State transitions:
//
//	Pending ──> Assigned ──> InTransit ──> Completed
//	               │  ^          │
//	               └──┘          │
//	      (reassignment)         │
//	               │             │
//	               └──> Failed <─┘
//
// Completed and Failed are final.
type LegStatus int

const (
	// LegStatusUnknown catches uninitialised values.
	LegStatusUnknown LegStatus = iota

	// Pending legs wait for a courier.
	Pending

	// Assigned legs have a courier bound. The courier may still be swapped.
	Assigned

	// InTransit legs are being carried.
	InTransit

	Completed
	Failed
)

func getLegStatusStrings() map[LegStatus]string {
	return map[LegStatus]string{
		LegStatusUnknown: "unknown",
		Pending:          "pending",
		Assigned:         "assigned",
		InTransit:        "in_transit",
		Completed:        "completed",
		Failed:           "failed",
	}
}

// ParseLegStatus maps a wire code such as "in_transit" to a status.
func ParseLegStatus(code string) (LegStatus, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for s, str := range getLegStatusStrings() {
		if s != LegStatusUnknown && str == code {
			return s, nil
		}
	}
	return LegStatusUnknown, errs.NewValueIsInvalidErrorWithCause("leg status", fmt.Errorf("%q is not a valid leg status", code))
}

// Validate rejects LegStatusUnknown and any value outside the enum.
func (s LegStatus) Validate() error {
	if s <= LegStatusUnknown || s > Failed {
		return errs.NewValueIsInvalidErrorWithCause("leg status", fmt.Errorf("%d is not a valid leg status", s))
	}
	return nil
}

func (s LegStatus) String() string {
	if str, ok := getLegStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no further transition is allowed.
func (s LegStatus) IsFinal() bool {
	return s == Completed || s == Failed
}

// Assign transitions Pending or Assigned to Assigned.
func (s LegStatus) Assign() (LegStatus, error) {
	if s != Pending && s != Assigned {
		return 0, transitionError(s, Assigned)
	}
	return Assigned, nil
}

// Start transitions Assigned to InTransit.
func (s LegStatus) Start() (LegStatus, error) {
	if s != Assigned {
		return 0, transitionError(s, InTransit)
	}
	return InTransit, nil
}

// Complete transitions InTransit to Completed. A leg is never completed without
// being picked up first.
func (s LegStatus) Complete() (LegStatus, error) {
	if s != InTransit {
		return 0, transitionError(s, Completed)
	}
	return Completed, nil
}

// Fail transitions Assigned or InTransit to Failed.
func (s LegStatus) Fail() (LegStatus, error) {
	if s != Assigned && s != InTransit {
		return 0, transitionError(s, Failed)
	}
	return Failed, nil
}

// ValidateCanHaveCourier checks that only Pending legs are unassigned.
func (s LegStatus) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("leg status",
			fmt.Errorf("%s is not a valid status to have a courier", s))
	}
	if !courier && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("leg status",
			fmt.Errorf("%s is not a valid status to have no courier", s))
	}
	return nil
}

func transitionError(from, to LegStatus) error {
	return errs.NewValueIsInvalidErrorWithCause("leg status",
		fmt.Errorf("cannot move from %s to %s", from, to))
}
