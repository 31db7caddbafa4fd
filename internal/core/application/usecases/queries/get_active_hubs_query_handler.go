package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetActiveHubsQueryHandler reads the active hub network ordered by code.
type GetActiveHubsQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveHubsQueryHandler(db *gorm.DB) GetActiveHubsQueryHandler {
	return GetActiveHubsQueryHandler{db: db}
}

func (h GetActiveHubsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveHubsQuery,
) ([]GetActiveHubsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	hubs, err := readActiveHubs(ctx, h.db)
	if err != nil {
		return nil, err
	}

	response := make([]GetActiveHubsQueryResponse, 0, len(hubs))
	for _, hb := range hubs {
		response = append(response, GetActiveHubsQueryResponse{
			Code:             hb.Code(),
			Name:             hb.Name(),
			Address:          hb.Address(),
			CoverageKeywords: hb.CoverageKeywords(),
		})
	}

	return response, nil
}
