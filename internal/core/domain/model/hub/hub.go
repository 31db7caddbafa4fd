package hub

import (
	"errors"
	"slices"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrHubIsNotConstructed = errors.New("Hub must be created via NewHub constructor")
	ErrCodeIsRequired      = errs.NewValueIsRequiredError("hub code")
	ErrNameIsRequired      = errs.NewValueIsRequiredError("hub name")
)

// Hub is a regional sorting facility where shipments change couriers between legs.
// Hubs are reference data: the engine only reads them, an admin process creates them.
type Hub struct {
	code             string
	name             string
	address          kernel.Location
	coverageKeywords []string
	active           bool
	guard            guard.ConstructorGuard
}

// NewHub registers a new, active hub. The code is normalised to upper case and
// coverage keywords to trimmed lower case without duplicates.
func NewHub(code, name string, address kernel.Location, coverageKeywords []string) (*Hub, error) {
	return RestoreHub(code, name, address, coverageKeywords, true)
}

// RestoreHub rebuilds a hub from storage.
func RestoreHub(code, name string, address kernel.Location, coverageKeywords []string, active bool) (*Hub, error) {
	h := &Hub{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		h.setCode(code),
		h.setName(name),
		h.setAddress(address),
	); err != nil {
		return nil, err
	}
	h.setCoverageKeywords(coverageKeywords)

	return h, nil
}

func (h *Hub) Validate() error {
	if h == nil {
		return ErrHubIsNotConstructed
	}
	return h.guard.Validate(ErrHubIsNotConstructed)
}

func (h *Hub) IsEqual(other *Hub) bool {
	return h != nil && other != nil && h.code == other.code
}

func (h *Hub) Code() string {
	return h.code
}

func (h *Hub) Name() string {
	return h.name
}

func (h *Hub) Address() kernel.Location {
	return h.address
}

// Coordinates returns a copy of the hub position, or nil when unknown.
func (h *Hub) Coordinates() *kernel.GeoPoint {
	return h.address.Point()
}

func (h *Hub) CoverageKeywords() []string {
	return slices.Clone(h.coverageKeywords)
}

func (h *Hub) IsActive() bool {
	return h.active
}

func (h *Hub) Activate() {
	h.active = true
}

func (h *Hub) Deactivate() {
	h.active = false
}

// Covers reports whether any coverage keyword is a substring of one of the given
// location parts. Matching is case-insensitive.
func (h *Hub) Covers(parts ...string) bool {
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		for _, keyword := range h.coverageKeywords {
			if strings.Contains(part, keyword) {
				return true
			}
		}
	}
	return false
}

func (h *Hub) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ErrCodeIsRequired
	}
	h.code = code
	return nil
}

func (h *Hub) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	h.name = name
	return nil
}

func (h *Hub) setAddress(address kernel.Location) error {
	if err := address.Validate(); err != nil {
		return err
	}
	h.address = address
	return nil
}

func (h *Hub) setCoverageKeywords(keywords []string) {
	normalised := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && !slices.Contains(normalised, k) {
			normalised = append(normalised, k)
		}
	}
	h.coverageKeywords = normalised
}
