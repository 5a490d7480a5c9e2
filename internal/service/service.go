package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fleetrent-backend/internal/domain"
)

// IDGenerator produces opaque unique rental IDs. Injected so the
// rental service stays deterministic under test.
type IDGenerator func() string

type ClientService interface {
	Register(ctx context.Context, client *domain.Client) error
	GetByDocument(ctx context.Context, document string) (*domain.Client, error)
	SearchByName(ctx context.Context, term string) ([]*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Remove(ctx context.Context, document string) error
	Exists(ctx context.Context, document string) (bool, error)
}

type VehicleService interface {
	Register(ctx context.Context, vehicle *domain.Vehicle) error
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	ListAvailable(ctx context.Context) ([]*domain.Vehicle, error)
	SearchByName(ctx context.Context, term string) ([]*domain.Vehicle, error)
}

type RentalService interface {
	Rent(ctx context.Context, document, plate string, pickupTime time.Time, pickupLocation string) (*domain.Rental, error)
	Return(ctx context.Context, rentalID string, returnTime time.Time, returnLocation string) (*domain.Rental, error)

	// Read projections. None of these mutate state.
	GetByIDPrefix(ctx context.Context, prefix string) (*domain.Rental, error)
	List(ctx context.Context) ([]*domain.Rental, error)
	ListActive(ctx context.Context) ([]*domain.Rental, error)
	ListFinalized(ctx context.Context) ([]*domain.Rental, error)
	ListByClient(ctx context.Context, document string) ([]*domain.Rental, error)
	ListByVehicle(ctx context.Context, plate string) ([]*domain.Rental, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Rental, error)
	ListOrderedByPickup(ctx context.Context) ([]*domain.Rental, error)
	Paginate(ctx context.Context, page, size int) ([]*domain.Rental, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	RevenueByCategory(ctx context.Context) (map[domain.VehicleCategory]decimal.Decimal, error)
	TopRentedVehicles(ctx context.Context, limit int) ([]VehicleRanking, error)
	TopClients(ctx context.Context, limit int) ([]ClientRanking, error)
}

// ReportService formats read-only query results into text files and
// returns the written path.
type ReportService interface {
	RevenueReport(ctx context.Context, from, to time.Time) (string, error)
	FullRentalsReport(ctx context.Context) (string, error)
	TopVehiclesReport(ctx context.Context) (string, error)
	TopClientsReport(ctx context.Context) (string, error)
	RentalReceipt(ctx context.Context, rentalID string) (string, error)
	ReturnReceipt(ctx context.Context, rentalID string) (string, error)
}

// VehicleRanking is one entry of the most-rented-vehicles projection.
type VehicleRanking struct {
	Plate   string
	Name    string
	Rentals int
}

// ClientRanking is one entry of the top-clients projection.
type ClientRanking struct {
	Document string
	Name     string
	Rentals  int
}
