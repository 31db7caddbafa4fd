package hubrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/hub"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHubRepository implements HubRepository using GORM.
type GormHubRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormHubRepository(db *gorm.DB, tracker aggregateTracker) *GormHubRepository {
	return &GormHubRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new hub. A duplicate code fails with the driver's unique violation.
func (r *GormHubRepository) Add(ctx context.Context, aggregate *hub.Hub) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// Update overwrites every column, so deactivation and emptied keyword lists persist.
func (r *GormHubRepository) Update(ctx context.Context, aggregate *hub.Hub) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&HubDTO{}).Where("code = ?", dto.Code).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("hub", dto.Code)
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

func (r *GormHubRepository) Get(ctx context.Context, code string) (*hub.Hub, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto HubDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hub", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormHubRepository) GetAllActive(ctx context.Context) ([]*hub.Hub, error) {
	var dtos []HubDTO
	if err := r.db.WithContext(ctx).Where("active").Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	hubs := make([]*hub.Hub, 0, len(dtos))
	for _, dto := range dtos {
		h, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		hubs = append(hubs, h)
	}

	return hubs, nil
}
