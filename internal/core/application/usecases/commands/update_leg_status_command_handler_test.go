package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shipmentWithBusyCourier returns a hub-to-hub shipment whose first leg is assigned to
// a busy pickup courier.
func shipmentWithBusyCourier(t *testing.T) (*shipment.Shipment, *courier.Courier) {
	t.Helper()
	s := hubToHubShipment(t)
	c := testCourier(t, "HUB-PAM", courier.PickupDriver, courier.Busy, 4)
	require.NoError(t, s.AssignLeg(1, c.ID()))
	return s, c
}

func TestNewUpdateLegStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewUpdateLegStatusCommand(id, 1, route.InTransit)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, id.IsEqual(cmd.ShipmentID()))
	assert.Equal(t, 1, cmd.LegNumber())
	assert.Equal(t, route.InTransit, cmd.Status())

	for _, status := range []route.LegStatus{route.Pending, route.Assigned, route.LegStatusUnknown} {
		_, err = commands.NewUpdateLegStatusCommand(id, 1, status)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, status.String())
	}

	_, err = commands.NewUpdateLegStatusCommand(id, 0, route.Completed)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestUpdateLegStatusCommandHandler_Handle_InTransit(t *testing.T) {
	// Arrange
	ctx := t.Context()
	s, _ := shipmentWithBusyCourier(t)
	cmd, err := commands.NewUpdateLegStatusCommand(s.ID(), 1, route.InTransit)
	require.NoError(t, err)

	mockUoW, mockFactory, mockShipmentRepo, mockCourierRepo := assignmentMocks()
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockShipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		mockShipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateLegStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	leg, err := s.Leg(1)
	require.NoError(t, err)
	assert.Equal(t, route.InTransit, leg.Status())
	mockCourierRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockShipmentRepo.AssertExpectations(t)
}

func TestUpdateLegStatusCommandHandler_Handle_CompletedFreesCourier(t *testing.T) {
	// Arrange
	ctx := t.Context()
	s, c := shipmentWithBusyCourier(t)
	require.NoError(t, s.UpdateLegStatus(1, route.InTransit))

	cmd, err := commands.NewUpdateLegStatusCommand(s.ID(), 1, route.Completed)
	require.NoError(t, err)

	mockUoW, mockFactory, mockShipmentRepo, mockCourierRepo := assignmentMocks()
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockShipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		mockCourierRepo.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		mockCourierRepo.On("Update", ctx, c).Return(nil).Once(),
		mockShipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateLegStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, courier.Available, c.Status())
	assert.Equal(t, 1, c.CompletedCount())
	assert.Equal(t, shipment.InProgress, s.Status())
	mockCourierRepo.AssertExpectations(t)
	mockShipmentRepo.AssertExpectations(t)
}

func TestUpdateLegStatusCommandHandler_Handle_FailedReleasesCourier(t *testing.T) {
	// Arrange
	ctx := t.Context()
	s, c := shipmentWithBusyCourier(t)

	cmd, err := commands.NewUpdateLegStatusCommand(s.ID(), 1, route.Failed)
	require.NoError(t, err)

	mockUoW, mockFactory, mockShipmentRepo, mockCourierRepo := assignmentMocks()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockShipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once()
	mockCourierRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
	mockCourierRepo.On("Update", ctx, c).Return(nil).Once()
	mockShipmentRepo.On("Update", ctx, s).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUpdateLegStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, courier.Available, c.Status())
	assert.Equal(t, 0, c.CompletedCount())
	assert.Equal(t, shipment.Failed, s.Status())
	assert.Nil(t, s.FirstPendingLeg().CourierID())
}

func TestUpdateLegStatusCommandHandler_Handle_StartBeforePreviousLegCompleted(t *testing.T) {
	// Arrange
	ctx := t.Context()
	s, _ := shipmentWithBusyCourier(t)
	require.NoError(t, s.AssignLeg(2, kernel.NewUUID()))

	cmd, err := commands.NewUpdateLegStatusCommand(s.ID(), 2, route.InTransit)
	require.NoError(t, err)

	mockUoW, mockFactory, mockShipmentRepo, _ := assignmentMocks()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockShipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUpdateLegStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	mockShipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateLegStatusCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateLegStatusCommand(id, 1, route.Completed)
	require.NoError(t, err)

	mockUoW, mockFactory, mockShipmentRepo, _ := assignmentMocks()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockShipmentRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("shipment", id)).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUpdateLegStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
