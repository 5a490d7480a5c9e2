package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/pricing"
	"fleetrent-backend/internal/repository"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	clientRepo  repository.ClientRepository
	vehicleRepo repository.VehicleRepository
	newID       IDGenerator
	log         *slog.Logger
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	newID IDGenerator,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
		newID:       newID,
		log:         logger.WithService("rental"),
	}
}

// Rent creates an active rental and takes the vehicle off the
// availability pool. Validation happens before any mutation, so a
// failed rent leaves no trace.
func (s *rentalService) Rent(ctx context.Context, document, plate string, pickupTime time.Time, pickupLocation string) (*domain.Rental, error) {
	client, err := s.clientRepo.GetByDocument(ctx, document)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicleRepo.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	if !vehicle.Available {
		return nil, errors.Wrapf(domain.ErrConflict, "vehicle %s is not available", plate)
	}

	rental := domain.NewRental(s.newID(), client, vehicle, pickupTime, pickupLocation)

	vehicle.Available = false
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		vehicle.Available = true
		return nil, err
	}
	if err := s.rentalRepo.Save(ctx, rental); err != nil {
		// Undo the availability flip so a failed rent leaves no
		// partial state.
		vehicle.Available = true
		if undoErr := s.vehicleRepo.Save(ctx, vehicle); undoErr != nil {
			s.log.Error("Failed to restore vehicle availability after rent failure", "plate", plate, "error", undoErr)
		}
		return nil, err
	}

	s.log.Info("Rental started", "rental_id", rental.ID, "document", document, "plate", plate)
	return rental, nil
}

// Return finalizes an active rental: computes and freezes the total,
// releases the vehicle. Finalized is terminal. A failed return leaves
// the rental active and the vehicle reserved, same as a failed rent
// leaves no trace.
func (s *rentalService) Return(ctx context.Context, rentalID string, returnTime time.Time, returnLocation string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !rental.Active {
		return nil, errors.Wrapf(domain.ErrInvalidState, "rental %s is already finalized", rentalID)
	}
	if !returnTime.After(rental.PickupTime) {
		return nil, errors.Wrap(domain.ErrInvalidArgument, "return time must be after pickup time")
	}

	quote, err := pricing.Quote(rental.Vehicle.Category, rental.Client.Kind, rental.PickupTime, returnTime)
	if err != nil {
		return nil, err
	}

	// Re-fetch the canonical vehicle: the rental's reference and the
	// repository copy are the same entity today, but availability must
	// always flip on whatever the repository holds.
	vehicle, err := s.vehicleRepo.GetByPlate(ctx, rental.Vehicle.Plate)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot release vehicle for rental %s", rentalID)
	}

	vehicle.Available = true
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		vehicle.Available = false
		return nil, err
	}

	rental.Finalize(returnTime, returnLocation, quote.Total)
	if err := s.rentalRepo.Save(ctx, rental); err != nil {
		// Undo both mutations so a failed return leaves the rental
		// active and the vehicle reserved.
		rental.ReturnTime = nil
		rental.ReturnLocation = ""
		rental.Total = decimal.Zero
		rental.Active = true
		vehicle.Available = false
		if undoErr := s.vehicleRepo.Save(ctx, vehicle); undoErr != nil {
			s.log.Error("Failed to re-reserve vehicle after return failure", "plate", vehicle.Plate, "error", undoErr)
		}
		return nil, err
	}

	s.log.Info("Rental finalized",
		"rental_id", rental.ID,
		"billed_days", quote.BilledDays,
		"discount", quote.DiscountRate.String(),
		"total", quote.Total.String())
	return rental, nil
}

func (s *rentalService) GetByIDPrefix(ctx context.Context, prefix string) (*domain.Rental, error) {
	return s.rentalRepo.GetByIDPrefix(ctx, prefix)
}

func (s *rentalService) List(ctx context.Context) ([]*domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListActive(ctx context.Context) ([]*domain.Rental, error) {
	return s.rentalRepo.Filter(ctx, func(r *domain.Rental) bool { return r.Active })
}

func (s *rentalService) ListFinalized(ctx context.Context) ([]*domain.Rental, error) {
	return s.rentalRepo.Filter(ctx, func(r *domain.Rental) bool { return !r.Active })
}

func (s *rentalService) ListByClient(ctx context.Context, document string) ([]*domain.Rental, error) {
	return s.rentalRepo.Filter(ctx, func(r *domain.Rental) bool {
		return r.Client.Document == document
	})
}

func (s *rentalService) ListByVehicle(ctx context.Context, plate string) ([]*domain.Rental, error) {
	return s.rentalRepo.Filter(ctx, func(r *domain.Rental) bool {
		return r.Vehicle.Plate == plate
	})
}

func (s *rentalService) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Rental, error) {
	return s.rentalRepo.Filter(ctx, func(r *domain.Rental) bool {
		return !r.PickupTime.Before(from) && !r.PickupTime.After(to)
	})
}

func (s *rentalService) ListOrderedByPickup(ctx context.Context) ([]*domain.Rental, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rentals, func(i, j int) bool {
		return rentals[i].PickupTime.After(rentals[j].PickupTime)
	})
	return rentals, nil
}

func (s *rentalService) Paginate(ctx context.Context, page, size int) ([]*domain.Rental, error) {
	return s.rentalRepo.Paginate(ctx, page, size, nil)
}

func (s *rentalService) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return s.rentalRepo.TotalRevenue(ctx)
}

func (s *rentalService) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return s.rentalRepo.RevenueBetween(ctx, from, to)
}

func (s *rentalService) RevenueByCategory(ctx context.Context) (map[domain.VehicleCategory]decimal.Decimal, error) {
	return s.rentalRepo.RevenueByCategory(ctx)
}

func (s *rentalService) TopRentedVehicles(ctx context.Context, limit int) ([]VehicleRanking, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]*VehicleRanking)
	for _, r := range rentals {
		entry, ok := counts[r.Vehicle.Plate]
		if !ok {
			entry = &VehicleRanking{Plate: r.Vehicle.Plate, Name: r.Vehicle.Name}
			counts[r.Vehicle.Plate] = entry
		}
		entry.Rentals++
	}

	ranking := make([]VehicleRanking, 0, len(counts))
	for _, entry := range counts {
		ranking = append(ranking, *entry)
	}
	sortRanking(ranking, func(r VehicleRanking) (int, string) { return r.Rentals, r.Plate })
	return clip(ranking, limit), nil
}

func (s *rentalService) TopClients(ctx context.Context, limit int) ([]ClientRanking, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]*ClientRanking)
	for _, r := range rentals {
		entry, ok := counts[r.Client.Document]
		if !ok {
			entry = &ClientRanking{Document: r.Client.Document, Name: r.Client.Name}
			counts[r.Client.Document] = entry
		}
		entry.Rentals++
	}

	ranking := make([]ClientRanking, 0, len(counts))
	for _, entry := range counts {
		ranking = append(ranking, *entry)
	}
	sortRanking(ranking, func(r ClientRanking) (int, string) { return r.Rentals, r.Document })
	return clip(ranking, limit), nil
}

// sortRanking orders by rental count descending, key ascending on ties
// so rankings are stable across runs.
func sortRanking[T any](ranking []T, fields func(T) (int, string)) {
	sort.Slice(ranking, func(i, j int) bool {
		ci, ki := fields(ranking[i])
		cj, kj := fields(ranking[j])
		if ci != cj {
			return ci > cj
		}
		return ki < kj
	})
}

func clip[T any](ranking []T, limit int) []T {
	if limit <= 0 || limit >= len(ranking) {
		return ranking
	}
	return ranking[:limit]
}
