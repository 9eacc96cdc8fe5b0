package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/service"
)

func TestInsuranceService_ListStatuses(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	window := func(startOffset, endOffset time.Duration) (*time.Time, *time.Time) {
		start := now.Add(startOffset)
		end := now.Add(endOffset)
		return &start, &end
	}

	activeStart, activeEnd := window(-30*24*time.Hour, 30*24*time.Hour)
	pendingStart, pendingEnd := window(10*24*time.Hour, 300*24*time.Hour)
	expiredStart, expiredEnd := window(-300*24*time.Hour, -10*24*time.Hour)

	vehicles := []domain.Vehicle{
		{ID: 1, Name: "Covered", InsuranceStart: activeStart, InsuranceEnd: activeEnd},
		{ID: 2, Name: "Upcoming", InsuranceStart: pendingStart, InsuranceEnd: pendingEnd},
		{ID: 3, Name: "Lapsed", InsuranceStart: expiredStart, InsuranceEnd: expiredEnd},
		{ID: 4, Name: "Uninsured"},
	}

	vehicleRepo := new(MockVehicleRepo)
	vehicleRepo.On("ListByPartner", ctx, int32(7)).Return(vehicles, nil)

	svc := service.NewInsuranceService(vehicleRepo)
	statuses, err := svc.ListStatuses(ctx, 7)
	require.NoError(t, err)
	require.Len(t, statuses, 4)

	assert.Equal(t, domain.InsuranceStatusActive, statuses[0].Status)
	assert.Equal(t, domain.InsuranceStatusPending, statuses[1].Status)
	assert.Equal(t, domain.InsuranceStatusExpired, statuses[2].Status)
	assert.Equal(t, domain.InsuranceStatusNone, statuses[3].Status)
}

func TestInsuranceService_UpdateWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects end before start", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := service.NewInsuranceService(vehicleRepo)

		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, -1)
		err := svc.UpdateWindow(ctx, 7, 12, &start, &end)
		assert.Error(t, err)
		vehicleRepo.AssertNotCalled(t, "Update", ctx, nil)
	})

	t.Run("Persists the new window", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		vehicle := &domain.Vehicle{ID: 12, PartnerID: 7, Name: "Dacia Logan"}
		vehicleRepo.On("GetByID", ctx, int32(12), int32(7)).Return(vehicle, nil)
		vehicleRepo.On("Update", ctx, vehicle).Return(nil)

		svc := service.NewInsuranceService(vehicleRepo)

		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)
		err := svc.UpdateWindow(ctx, 7, 12, &start, &end)
		require.NoError(t, err)
		assert.Equal(t, &start, vehicle.InsuranceStart)
		assert.Equal(t, &end, vehicle.InsuranceEnd)
	})
}
