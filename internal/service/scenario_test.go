package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository/memory"
	"fleetrent-backend/internal/service"
	"fleetrent-backend/internal/storage"
)

// Full rental lifecycle against real in-memory repositories backed by
// a shared snapshot store.
func TestRentalLifecycle(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	clientRepo := memory.NewClientRepository(store)
	vehicleRepo := memory.NewVehicleRepository(store)
	rentalRepo := memory.NewRentalRepository(store, clientRepo, vehicleRepo)

	next := 0
	ids := []string{"rental-1", "rental-2"}
	newID := func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}

	clients := service.NewClientService(clientRepo)
	vehicles := service.NewVehicleService(vehicleRepo)
	rentals := service.NewRentalService(rentalRepo, clientRepo, vehicleRepo, newID)

	require.NoError(t, clients.Register(ctx, domain.NewIndividual("12345678901", "Ana Silva")))
	require.NoError(t, vehicles.Register(ctx, domain.NewVehicle("ABC-1234", "Gol 1.0", domain.VehicleCategorySmall)))

	pickup := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	rental, err := rentals.Rent(ctx, "12345678901", "ABC-1234", pickup, "Filial Centro")
	require.NoError(t, err)

	t.Run("rented vehicle leaves the availability pool", func(t *testing.T) {
		available, err := vehicles.ListAvailable(ctx)
		assert.NoError(t, err)
		assert.Empty(t, available)

		_, err = rentals.Rent(ctx, "12345678901", "ABC-1234", pickup, "Filial Centro")
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("active rental is listed", func(t *testing.T) {
		active, err := rentals.ListActive(ctx)
		assert.NoError(t, err)
		if assert.Len(t, active, 1) {
			assert.Equal(t, rental.ID, active[0].ID)
		}
	})

	t.Run("return finalizes with the discounted total", func(t *testing.T) {
		// 7 days small for an individual: 700 minus 5% = 665.00
		returned, err := rentals.Return(ctx, rental.ID, pickup.AddDate(0, 0, 7), "Filial Norte")
		require.NoError(t, err)
		assert.Equal(t, "665.00", returned.Total.StringFixed(2))
		assert.False(t, returned.Active)

		available, err := vehicles.ListAvailable(ctx)
		assert.NoError(t, err)
		assert.Len(t, available, 1)
	})

	t.Run("finalized rental stays finalized", func(t *testing.T) {
		_, err := rentals.Return(ctx, rental.ID, pickup.AddDate(0, 0, 8), "Filial Norte")
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
	})

	t.Run("revenue reflects the finalized rental", func(t *testing.T) {
		total, err := rentals.TotalRevenue(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "665.00", total.StringFixed(2))

		byCategory, err := rentals.RevenueByCategory(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "665.00", byCategory[domain.VehicleCategorySmall].StringFixed(2))
	})

	t.Run("state survives a reload from the snapshot store", func(t *testing.T) {
		clientRepo2 := memory.NewClientRepository(store)
		vehicleRepo2 := memory.NewVehicleRepository(store)
		rentalRepo2 := memory.NewRentalRepository(store, clientRepo2, vehicleRepo2)
		require.NoError(t, clientRepo2.Load(ctx))
		require.NoError(t, vehicleRepo2.Load(ctx))
		require.NoError(t, rentalRepo2.Load(ctx))

		rentals2 := service.NewRentalService(rentalRepo2, clientRepo2, vehicleRepo2, newID)
		reloaded, err := rentals2.GetByIDPrefix(ctx, rental.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.Active)
		assert.Equal(t, "665.00", reloaded.Total.StringFixed(2))
		assert.Equal(t, "Ana Silva", reloaded.Client.Name)
		assert.Equal(t, "ABC-1234", reloaded.Vehicle.Plate)
	})
}

func TestRentalProjections(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	clientRepo := memory.NewClientRepository(store)
	vehicleRepo := memory.NewVehicleRepository(store)
	rentalRepo := memory.NewRentalRepository(store, clientRepo, vehicleRepo)

	seq := 0
	newID := func() string {
		seq++
		return []string{"r-a", "r-b", "r-c"}[seq-1]
	}

	clients := service.NewClientService(clientRepo)
	vehicles := service.NewVehicleService(vehicleRepo)
	rentals := service.NewRentalService(rentalRepo, clientRepo, vehicleRepo, newID)

	require.NoError(t, clients.Register(ctx, domain.NewIndividual("12345678901", "Ana Silva")))
	require.NoError(t, clients.Register(ctx, domain.NewOrganization("12345678000195", "Tech Solutions Ltda")))
	require.NoError(t, vehicles.Register(ctx, domain.NewVehicle("ABC-1234", "Gol 1.0", domain.VehicleCategorySmall)))
	require.NoError(t, vehicles.Register(ctx, domain.NewVehicle("DEF-5678", "Civic 2.0", domain.VehicleCategoryMedium)))
	require.NoError(t, vehicles.Register(ctx, domain.NewVehicle("GHI-9012", "Hilux 2.8", domain.VehicleCategorySUV)))

	jan := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	_, err := rentals.Rent(ctx, "12345678901", "ABC-1234", jan, "Filial Centro")
	require.NoError(t, err)
	_, err = rentals.Rent(ctx, "12345678000195", "DEF-5678", feb, "Filial Sul")
	require.NoError(t, err)
	_, err = rentals.Rent(ctx, "12345678901", "GHI-9012", mar, "Filial Norte")
	require.NoError(t, err)

	t.Run("list by client", func(t *testing.T) {
		byAna, err := rentals.ListByClient(ctx, "12345678901")
		assert.NoError(t, err)
		assert.Len(t, byAna, 2)
	})

	t.Run("list by vehicle", func(t *testing.T) {
		byGol, err := rentals.ListByVehicle(ctx, "ABC-1234")
		assert.NoError(t, err)
		assert.Len(t, byGol, 1)
	})

	t.Run("list between filters on pickup time", func(t *testing.T) {
		firstQuarter, err := rentals.ListBetween(ctx, jan, feb)
		assert.NoError(t, err)
		assert.Len(t, firstQuarter, 2)
	})

	t.Run("ordered by pickup descending", func(t *testing.T) {
		ordered, err := rentals.ListOrderedByPickup(ctx)
		assert.NoError(t, err)
		if assert.Len(t, ordered, 3) {
			assert.Equal(t, "r-c", ordered[0].ID)
			assert.Equal(t, "r-a", ordered[2].ID)
		}
	})

	t.Run("paginate walks insertion order", func(t *testing.T) {
		page, err := rentals.Paginate(ctx, 1, 2)
		assert.NoError(t, err)
		if assert.Len(t, page, 1) {
			assert.Equal(t, "r-c", page[0].ID)
		}
	})

	t.Run("search clients by name fragment", func(t *testing.T) {
		matched, err := clients.SearchByName(ctx, "silva")
		assert.NoError(t, err)
		assert.Len(t, matched, 1)
	})

	t.Run("search vehicles by name fragment", func(t *testing.T) {
		matched, err := vehicles.SearchByName(ctx, "civic")
		assert.NoError(t, err)
		assert.Len(t, matched, 1)
	})
}
