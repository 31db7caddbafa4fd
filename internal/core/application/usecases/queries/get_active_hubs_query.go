package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetActiveHubsQueryIsNotConstructed = errors.New(
		"GetActiveHubsQuery must be created via NewGetActiveHubsQuery constructor",
	)
)

// GetActiveHubsQuery lists the hubs the planner can route through.
type GetActiveHubsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveHubsQuery() GetActiveHubsQuery {
	return GetActiveHubsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveHubsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveHubsQueryIsNotConstructed)
}

type GetActiveHubsQueryResponse struct {
	Code             string
	Name             string
	Address          kernel.Location
	CoverageKeywords []string
}
