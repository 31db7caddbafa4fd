package shipmentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment together with its legs.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update writes the derived status and each leg's status and courier. Legs are never
// added or removed after planning.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
	}

	for _, leg := range dto.Legs {
		err := db.Model(&LegDTO{}).
			Where("shipment_id = ? AND number = ?", leg.ShipmentID, leg.Number).
			Updates(map[string]any{
				"status":     leg.Status,
				"courier_id": leg.CourierID,
			}).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.withLegs(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListWithReadyLeg returns a page of shipments, oldest first, whose first pending leg is
// ready to staff: leg 1, or a leg whose previous leg is in transit or completed.
// Failed and delivered shipments are skipped.
func (r *GormShipmentRepository) ListWithReadyLeg(
	ctx context.Context,
	offset, limit int,
) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.withLegs(ctx).
		Where("status IN ?", []string{shipment.Planned.String(), shipment.InProgress.String()}).
		Where(`EXISTS (
			SELECT 1 FROM shipment_legs l
			WHERE l.shipment_id = shipments.id AND l.status = ?
			AND (l.number = 1 OR EXISTS (
				SELECT 1 FROM shipment_legs p
				WHERE p.shipment_id = l.shipment_id AND p.number = l.number - 1 AND p.status IN ?
			))
		)`, route.Pending.String(), []string{route.InTransit.String(), route.Completed.String()}).
		Order("created_at, id").
		Offset(offset).
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		entity, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		shipments = append(shipments, entity)
	}
	return shipments, nil
}

func (r *GormShipmentRepository) withLegs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Legs", func(db *gorm.DB) *gorm.DB {
		return db.Order("number")
	})
}
