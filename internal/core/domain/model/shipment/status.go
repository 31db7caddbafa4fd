package shipment

// Status summarises a shipment from the state of its legs.
type Status int

const (
	StatusUnknown Status = iota
	// Planned: every leg is pending.
	Planned
	InProgress
	// Delivered: the last leg is completed.
	Delivered
	// Failed: some leg failed; the order workflow decides what happens next.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Planned:       "planned",
		InProgress:    "in_progress",
		Delivered:     "delivered",
		Failed:        "failed",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
