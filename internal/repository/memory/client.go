package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/storage"
)

const clientCollection = "clients"

type clientRepository struct {
	mu    sync.Mutex
	col   *collection[domain.Client]
	store storage.SnapshotStore
}

func NewClientRepository(store storage.SnapshotStore) repository.ClientRepository {
	return &clientRepository{
		col:   newCollection(func(c *domain.Client) string { return c.Document }),
		store: store,
	}
}

func (r *clientRepository) Save(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.col.put(client)
	return r.persist(ctx)
}

func (r *clientRepository) GetByDocument(ctx context.Context, document string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	client, ok := r.col.get(document)
	if !ok {
		return nil, errors.Wrapf(domain.ErrNotFound, "client %s", document)
	}
	return client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.all(), nil
}

func (r *clientRepository) Filter(ctx context.Context, pred func(*domain.Client) bool) ([]*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.filter(pred), nil
}

func (r *clientRepository) Paginate(ctx context.Context, page, size int, pred func(*domain.Client) bool) ([]*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.paginate(page, size, pred)
}

func (r *clientRepository) Count(ctx context.Context, pred func(*domain.Client) bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.count(pred), nil
}

func (r *clientRepository) Remove(ctx context.Context, document string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.col.remove(document) {
		return errors.Wrapf(domain.ErrNotFound, "client %s", document)
	}
	return r.persist(ctx)
}

func (r *clientRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var clients []*domain.Client
	if err := r.store.Load(ctx, clientCollection, &clients); err != nil {
		return err
	}
	r.col.replaceAll(clients)
	return nil
}

// persist runs under the repository lock.
func (r *clientRepository) persist(ctx context.Context) error {
	return r.store.Save(ctx, clientCollection, r.col.all())
}
