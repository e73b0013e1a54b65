package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDeliveryStatusCommand_ValidInput(t *testing.T) {
	deliveryID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, driverID, "Delivered")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, deliveryID, cmd.DeliveryID())
	assert.Equal(t, driverID, cmd.DriverID())
	assert.Equal(t, delivery.StatusDelivered, cmd.TargetStatus())

	cmd, err = commands.NewUpdateDeliveryStatusCommand(deliveryID, driverID, "Returned")
	require.NoError(t, err)
	assert.Equal(t, delivery.StatusReturned, cmd.TargetStatus())
}

func TestNewUpdateDeliveryStatusCommand_RejectsOtherStatuses(t *testing.T) {
	for _, target := range []string{"Pending", "InTransit", "Cancelled"} {
		_, err := commands.NewUpdateDeliveryStatusCommand(
			kernel.NewUUID(), kernel.NewUUID(), target)
		require.ErrorIs(t, err, commands.ErrTargetStatusIsNotReachableByDriver, target)
	}
}

func TestNewUpdateDeliveryStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateDeliveryStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Teleported")
	require.Error(t, err)
}

func TestUpdateDeliveryStatusCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.UpdateDeliveryStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateDeliveryStatusCommandIsNotConstructed)
}
