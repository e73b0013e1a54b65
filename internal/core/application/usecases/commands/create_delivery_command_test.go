package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateDeliveryCommand(t *testing.T) commands.CreateDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"Amine", "+213550000001",
		"Yacine", "+213550000002",
		"Algiers", "Oran", "small", "standard",
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateDeliveryCommand_ValidInput(t *testing.T) {
	deliveryID := kernel.NewUUID()
	senderID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, senderID,
		"Amine", "+213550000001",
		"Yacine", "+213550000002",
		"Algiers", "Oran", "small", "standard",
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, deliveryID, cmd.DeliveryID())
	assert.Equal(t, senderID, cmd.SenderID())
	assert.Equal(t, "Amine", cmd.SenderName())
	assert.Equal(t, "Yacine", cmd.ReceiverName())
	assert.Equal(t, "Algiers", cmd.Origin())
	assert.Equal(t, "Oran", cmd.Destination())
	assert.Equal(t, "small", cmd.Category())
	assert.Equal(t, "standard", cmd.Tier())
}

func TestNewCreateDeliveryCommand_InvalidDeliveryID(t *testing.T) {
	_, err := commands.NewCreateDeliveryCommand(
		kernel.UUID{}, kernel.NewUUID(),
		"Amine", "+213550000001",
		"Yacine", "+213550000002",
		"Algiers", "Oran", "small", "standard",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateDeliveryCommand_MissingContact(t *testing.T) {
	_, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"", "+213550000001",
		"Yacine", "",
		"Algiers", "Oran", "small", "standard",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrContactNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrContactPhoneIsRequired)
}

func TestNewCreateDeliveryCommand_MissingRoute(t *testing.T) {
	_, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"Amine", "+213550000001",
		"Yacine", "+213550000002",
		"", "", "small", "standard",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOriginIsRequired)
}

func TestNewCreateDeliveryCommand_MissingCategoryAndTier(t *testing.T) {
	_, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"Amine", "+213550000001",
		"Yacine", "+213550000002",
		"Algiers", "Oran", "", "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCategoryIsRequired)
	assert.ErrorIs(t, err, commands.ErrTierIsRequired)
}

func TestCreateDeliveryCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateDeliveryCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeliveryCommandIsNotConstructed)
}
