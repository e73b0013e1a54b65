package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(
	ctx context.Context,
	aggregate *delivery.Delivery,
	expectedStatus delivery.Status,
) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Accept(
	ctx context.Context,
	deliveryID kernel.UUID,
	driverID kernel.UUID,
) (*delivery.Delivery, error) {
	args := m.Called(ctx, deliveryID, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllInTransitUpdatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func testEstimator(t *testing.T) services.DistanceEstimator {
	t.Helper()
	estimator, err := services.NewDistanceEstimator(services.DefaultRoadFactor)
	require.NoError(t, err)
	return estimator
}

func testPricing(t *testing.T) services.PricingEngine {
	t.Helper()
	pricing, err := services.NewPricingEngine(
		services.DefaultMinimumPrice, services.DefaultDriverShare)
	require.NoError(t, err)
	return pricing
}

func inTransitDelivery(t *testing.T, senderID, driverID kernel.UUID) *delivery.Delivery {
	t.Helper()
	record := pendingDelivery(t, senderID)
	require.NoError(t, record.Accept(driverID))
	return record
}

func pendingDelivery(t *testing.T, senderID kernel.UUID) *delivery.Delivery {
	t.Helper()

	origin, err := kernel.NewRegion("Algiers")
	require.NoError(t, err)
	destination, err := kernel.NewRegion("Oran")
	require.NoError(t, err)

	sender, err := delivery.NewContact("Amine", "+213550000001")
	require.NoError(t, err)
	receiver, err := delivery.NewContact("Yacine", "+213550000002")
	require.NoError(t, err)

	quote, err := delivery.NewQuote(421.6447, 843, 8.4329)
	require.NoError(t, err)

	record, err := delivery.NewDelivery(
		kernel.NewUUID(), senderID,
		sender, receiver,
		origin, destination,
		delivery.CategorySmall, delivery.TierStandard, quote,
	)
	require.NoError(t, err)
	return record
}
