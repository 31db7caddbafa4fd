package courier

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is a courier's availability.
type Status int

const (
	StatusUnknown Status = iota
	Available
	Busy
	Offline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Available:     "available",
		Busy:          "busy",
		Offline:       "offline",
	}
}

func ParseStatus(code string) (Status, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for s, str := range getStatusStrings() {
		if s != StatusUnknown && str == code {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("courier status", fmt.Errorf("%q is not a valid courier status", code))
}

func (s Status) Validate() error {
	if s < Available || s > Offline {
		return errs.NewValueIsInvalidErrorWithCause("courier status", fmt.Errorf("%d is not a valid courier status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
