package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fleetrent-backend/internal/domain"
)

// Repositories are the single source of truth for their entity and the
// unit of persistence: every mutating call snapshots the whole
// collection through the storage collaborator before returning.
// Default iteration order is insertion order.

type ClientRepository interface {
	Save(ctx context.Context, client *domain.Client) error
	GetByDocument(ctx context.Context, document string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Filter(ctx context.Context, pred func(*domain.Client) bool) ([]*domain.Client, error)
	Paginate(ctx context.Context, page, size int, pred func(*domain.Client) bool) ([]*domain.Client, error)
	Count(ctx context.Context, pred func(*domain.Client) bool) (int, error)
	Remove(ctx context.Context, document string) error
	Load(ctx context.Context) error
}

type VehicleRepository interface {
	Save(ctx context.Context, vehicle *domain.Vehicle) error
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	Filter(ctx context.Context, pred func(*domain.Vehicle) bool) ([]*domain.Vehicle, error)
	Paginate(ctx context.Context, page, size int, pred func(*domain.Vehicle) bool) ([]*domain.Vehicle, error)
	Count(ctx context.Context, pred func(*domain.Vehicle) bool) (int, error)
	Load(ctx context.Context) error
}

type RentalRepository interface {
	Save(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	GetByIDPrefix(ctx context.Context, prefix string) (*domain.Rental, error)
	List(ctx context.Context) ([]*domain.Rental, error)
	Filter(ctx context.Context, pred func(*domain.Rental) bool) ([]*domain.Rental, error)
	Paginate(ctx context.Context, page, size int, pred func(*domain.Rental) bool) ([]*domain.Rental, error)
	Count(ctx context.Context, pred func(*domain.Rental) bool) (int, error)

	// Aggregates over finalized rentals.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	RevenueByCategory(ctx context.Context) (map[domain.VehicleCategory]decimal.Decimal, error)

	Load(ctx context.Context) error
}
