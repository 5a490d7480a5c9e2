package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/storage"
)

const vehicleCollection = "vehicles"

type vehicleRepository struct {
	mu    sync.Mutex
	col   *collection[domain.Vehicle]
	store storage.SnapshotStore
}

func NewVehicleRepository(store storage.SnapshotStore) repository.VehicleRepository {
	return &vehicleRepository{
		col:   newCollection(func(v *domain.Vehicle) string { return v.Plate }),
		store: store,
	}
}

func (r *vehicleRepository) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.col.put(vehicle)
	return r.persist(ctx)
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicle, ok := r.col.get(plate)
	if !ok {
		return nil, errors.Wrapf(domain.ErrNotFound, "vehicle %s", plate)
	}
	return vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.all(), nil
}

func (r *vehicleRepository) Filter(ctx context.Context, pred func(*domain.Vehicle) bool) ([]*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.filter(pred), nil
}

func (r *vehicleRepository) Paginate(ctx context.Context, page, size int, pred func(*domain.Vehicle) bool) ([]*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.paginate(page, size, pred)
}

func (r *vehicleRepository) Count(ctx context.Context, pred func(*domain.Vehicle) bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.count(pred), nil
}

func (r *vehicleRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var vehicles []*domain.Vehicle
	if err := r.store.Load(ctx, vehicleCollection, &vehicles); err != nil {
		return err
	}
	r.col.replaceAll(vehicles)
	return nil
}

func (r *vehicleRepository) persist(ctx context.Context) error {
	return r.store.Save(ctx, vehicleCollection, r.col.all())
}
