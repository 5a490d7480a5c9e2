package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/storage"
)

func seedClients(t *testing.T, repo repository.ClientRepository, n int) []*domain.Client {
	t.Helper()
	ctx := context.Background()
	out := make([]*domain.Client, 0, n)
	for i := 0; i < n; i++ {
		client := domain.NewIndividual(fmt.Sprintf("%011d", i+1), fmt.Sprintf("Client %c", 'A'+i))
		assert.NoError(t, repo.Save(ctx, client))
		out = append(out, client)
	}
	return out
}

func TestClientRepositorySaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(storage.NewMemoryStore())

	client := domain.NewIndividual("12345678901", "Ana Silva")
	assert.NoError(t, repo.Save(ctx, client))

	got, err := repo.GetByDocument(ctx, "12345678901")
	assert.NoError(t, err)
	assert.Same(t, client, got)

	_, err = repo.GetByDocument(ctx, "00000000000")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestClientRepositorySaveReplacesByKey(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(storage.NewMemoryStore())
	seedClients(t, repo, 3)

	// Re-saving the middle entity must keep its position and not grow
	// the collection.
	updated := domain.NewIndividual("00000000002", "Client B Renamed")
	assert.NoError(t, repo.Save(ctx, updated))

	clients, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, clients, 3)
	assert.Equal(t, "Client B Renamed", clients[1].Name)
}

func TestClientRepositoryListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(storage.NewMemoryStore())
	seeded := seedClients(t, repo, 5)

	clients, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, seeded, clients)
}

func TestClientRepositoryFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(storage.NewMemoryStore())
	seeded := seedClients(t, repo, 4)

	// Keep even positions; order must follow insertion order.
	matched, err := repo.Filter(ctx, func(c *domain.Client) bool {
		return c.Document == seeded[0].Document || c.Document == seeded[2].Document
	})
	assert.NoError(t, err)
	assert.Equal(t, []*domain.Client{seeded[0], seeded[2]}, matched)
}

func TestClientRepositoryPaginate(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(storage.NewMemoryStore())
	seeded := seedClients(t, repo, 7)

	t.Run("first page", func(t *testing.T) {
		page, err := repo.Paginate(ctx, 0, 3, nil)
		assert.NoError(t, err)
		assert.Equal(t, seeded[0:3], page)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, err := repo.Paginate(ctx, 2, 3, nil)
		assert.NoError(t, err)
		assert.Equal(t, seeded[6:7], page)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, err := repo.Paginate(ctx, 5, 3, nil)
		assert.NoError(t, err)
		assert.Empty(t, page)
	})

	t.Run("negative page is rejected", func(t *testing.T) {
		_, err := repo.Paginate(ctx, -1, 3, nil)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})

	t.Run("non-positive size is rejected", func(t *testing.T) {
		_, err := repo.Paginate(ctx, 0, 0, nil)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})

	t.Run("page sizes cover the whole collection", func(t *testing.T) {
		total := 0
		for page := 0; ; page++ {
			chunk, err := repo.Paginate(ctx, page, 2, nil)
			assert.NoError(t, err)
			if len(chunk) == 0 {
				break
			}
			total += len(chunk)
		}
		assert.Equal(t, len(seeded), total)
	})
}

func TestClientRepositoryCount(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(storage.NewMemoryStore())
	seeded := seedClients(t, repo, 4)

	n, err := repo.Count(ctx, nil)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = repo.Count(ctx, func(c *domain.Client) bool { return c.Document == seeded[0].Document })
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClientRepositoryRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(storage.NewMemoryStore())
	seeded := seedClients(t, repo, 3)

	assert.NoError(t, repo.Remove(ctx, seeded[1].Document))

	clients, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []*domain.Client{seeded[0], seeded[2]}, clients)

	err = repo.Remove(ctx, seeded[1].Document)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestClientRepositoryPersistsAcrossLoad(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := NewClientRepository(store)
	seeded := seedClients(t, first, 3)

	second := NewClientRepository(store)
	assert.NoError(t, second.Load(ctx))

	clients, err := second.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, clients, 3)
	for i, c := range clients {
		assert.Equal(t, *seeded[i], *c)
	}
}

func TestClientRepositoryLoadWithEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(storage.NewMemoryStore())

	assert.NoError(t, repo.Load(ctx))
	clients, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, clients)
}
