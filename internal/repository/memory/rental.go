package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/storage"
)

const rentalCollection = "rentals"

type rentalRepository struct {
	mu       sync.Mutex
	col      *collection[domain.Rental]
	store    storage.SnapshotStore
	clients  repository.ClientRepository
	vehicles repository.VehicleRepository
}

// NewRentalRepository needs the client and vehicle repositories to
// resolve the key references stored in rental snapshots. Load them
// first.
func NewRentalRepository(store storage.SnapshotStore, clients repository.ClientRepository, vehicles repository.VehicleRepository) repository.RentalRepository {
	return &rentalRepository{
		col:      newCollection(func(r *domain.Rental) string { return r.ID }),
		store:    store,
		clients:  clients,
		vehicles: vehicles,
	}
}

func (r *rentalRepository) Save(ctx context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.col.put(rental)
	return r.persist(ctx)
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rental, ok := r.col.get(id)
	if !ok {
		return nil, errors.Wrapf(domain.ErrNotFound, "rental %s", id)
	}
	return rental, nil
}

// GetByIDPrefix finds a rental by the leading characters of its ID,
// for callers that show truncated IDs. An ambiguous prefix is a
// conflict.
func (r *rentalRepository) GetByIDPrefix(ctx context.Context, prefix string) (*domain.Rental, error) {
	if prefix == "" {
		return nil, errors.Wrap(domain.ErrInvalidArgument, "rental id prefix must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	matches := r.col.filter(func(rt *domain.Rental) bool {
		return strings.HasPrefix(rt.ID, prefix)
	})
	switch len(matches) {
	case 0:
		return nil, errors.Wrapf(domain.ErrNotFound, "rental with id prefix %s", prefix)
	case 1:
		return matches[0], nil
	default:
		return nil, errors.Wrapf(domain.ErrConflict, "rental id prefix %s matches %d rentals", prefix, len(matches))
	}
}

func (r *rentalRepository) List(ctx context.Context) ([]*domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.all(), nil
}

func (r *rentalRepository) Filter(ctx context.Context, pred func(*domain.Rental) bool) ([]*domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.filter(pred), nil
}

func (r *rentalRepository) Paginate(ctx context.Context, page, size int, pred func(*domain.Rental) bool) ([]*domain.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.paginate(page, size, pred)
}

func (r *rentalRepository) Count(ctx context.Context, pred func(*domain.Rental) bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.count(pred), nil
}

func (r *rentalRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, rental := range r.col.all() {
		if !rental.Active {
			total = total.Add(rental.Total)
		}
	}
	return total, nil
}

func (r *rentalRepository) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, rental := range r.col.all() {
		if rental.Active {
			continue
		}
		if rental.PickupTime.Before(from) || rental.PickupTime.After(to) {
			continue
		}
		total = total.Add(rental.Total)
	}
	return total, nil
}

func (r *rentalRepository) RevenueByCategory(ctx context.Context) (map[domain.VehicleCategory]decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	revenue := make(map[domain.VehicleCategory]decimal.Decimal)
	for _, rental := range r.col.all() {
		if rental.Active {
			continue
		}
		category := rental.Vehicle.Category
		current, ok := revenue[category]
		if !ok {
			current = decimal.Zero
		}
		revenue[category] = current.Add(rental.Total)
	}
	return revenue, nil
}

// Load reads the rental snapshot and resolves client/vehicle key
// references against the already-loaded repositories. A rental whose
// references no longer resolve is skipped with a warning instead of
// failing startup.
func (r *rentalRepository) Load(ctx context.Context) error {
	var records []storage.RentalRecord
	if err := r.store.Load(ctx, rentalCollection, &records); err != nil {
		return err
	}

	rentals := make([]*domain.Rental, 0, len(records))
	for _, rec := range records {
		client, err := r.clients.GetByDocument(ctx, rec.ClientDocument)
		if err != nil {
			logger.Warn("Skipping rental with unresolvable client", "rental_id", rec.ID, "document", rec.ClientDocument)
			continue
		}
		vehicle, err := r.vehicles.GetByPlate(ctx, rec.VehiclePlate)
		if err != nil {
			logger.Warn("Skipping rental with unresolvable vehicle", "rental_id", rec.ID, "plate", rec.VehiclePlate)
			continue
		}
		rentals = append(rentals, &domain.Rental{
			ID:             rec.ID,
			Client:         client,
			Vehicle:        vehicle,
			PickupTime:     rec.PickupTime,
			PickupLocation: rec.PickupLocation,
			ReturnTime:     rec.ReturnTime,
			ReturnLocation: rec.ReturnLocation,
			Total:          rec.Total,
			Active:         rec.Active,
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.col.replaceAll(rentals)
	return nil
}

func (r *rentalRepository) persist(ctx context.Context) error {
	rentals := r.col.all()
	records := make([]storage.RentalRecord, 0, len(rentals))
	for _, rental := range rentals {
		records = append(records, storage.RentalRecord{
			ID:             rental.ID,
			ClientDocument: rental.Client.Document,
			VehiclePlate:   rental.Vehicle.Plate,
			PickupTime:     rental.PickupTime,
			PickupLocation: rental.PickupLocation,
			ReturnTime:     rental.ReturnTime,
			ReturnLocation: rental.ReturnLocation,
			Total:          rental.Total,
			Active:         rental.Active,
		})
	}
	return r.store.Save(ctx, rentalCollection, records)
}
