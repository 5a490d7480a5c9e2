package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
)

const reportTimeLayout = "02/01/2006 15:04"

type reportService struct {
	rentals RentalService
	dir     string
	log     *slog.Logger
}

// NewReportService writes text reports under dir, creating it if
// needed. It only consumes read projections of the rental service.
func NewReportService(rentals RentalService, dir string) (ReportService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create reports directory %s", dir)
	}
	return &reportService{
		rentals: rentals,
		dir:     dir,
		log:     logger.WithService("report"),
	}, nil
}

func (s *reportService) RevenueReport(ctx context.Context, from, to time.Time) (string, error) {
	rentals, err := s.rentals.ListBetween(ctx, from, to)
	if err != nil {
		return "", err
	}
	revenue, err := s.rentals.RevenueBetween(ctx, from, to)
	if err != nil {
		return "", err
	}
	byCategory, err := s.rentals.RevenueByCategory(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeader(&b, "REVENUE BY PERIOD")
	fmt.Fprintf(&b, "Period: %s to %s\n\n", from.Format(reportTimeLayout), to.Format(reportTimeLayout))
	fmt.Fprintf(&b, "Rentals in period: %d\n", len(rentals))
	fmt.Fprintf(&b, "Total revenue: %s\n\n", revenue.StringFixed(2))

	b.WriteString("Revenue by category (all finalized rentals):\n")
	for _, category := range []domain.VehicleCategory{domain.VehicleCategorySmall, domain.VehicleCategoryMedium, domain.VehicleCategorySUV} {
		if amount, ok := byCategory[category]; ok {
			fmt.Fprintf(&b, "  %-8s %s\n", category, amount.StringFixed(2))
		}
	}

	name := fmt.Sprintf("revenue_%s_to_%s.txt", from.Format("2006-01-02"), to.Format("2006-01-02"))
	return s.write(name, b.String())
}

func (s *reportService) TopVehiclesReport(ctx context.Context) (string, error) {
	ranking, err := s.rentals.TopRentedVehicles(ctx, 0)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeader(&b, "MOST RENTED VEHICLES")
	for i, entry := range ranking {
		fmt.Fprintf(&b, "%2d. %s - %s: %d rentals\n", i+1, entry.Plate, entry.Name, entry.Rentals)
	}

	return s.write("top_vehicles.txt", b.String())
}

func (s *reportService) TopClientsReport(ctx context.Context) (string, error) {
	ranking, err := s.rentals.TopClients(ctx, 0)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeader(&b, "TOP CLIENTS")
	for i, entry := range ranking {
		fmt.Fprintf(&b, "%2d. %s - %s: %d rentals\n", i+1, entry.Document, entry.Name, entry.Rentals)
	}

	return s.write("top_clients.txt", b.String())
}

// FullRentalsReport lists every rental, newest pickup first, with its
// current status.
func (s *reportService) FullRentalsReport(ctx context.Context) (string, error) {
	rentals, err := s.rentals.ListOrderedByPickup(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeader(&b, "ALL RENTALS")
	active := 0
	for _, rental := range rentals {
		status := "ACTIVE"
		if rental.Active {
			active++
		} else {
			status = fmt.Sprintf("FINALIZED %s", rental.Total.StringFixed(2))
		}
		fmt.Fprintf(&b, "%s | %s (%s) | %s - %s | %s | %s\n",
			shortID(rental.ID),
			rental.Client.Name, rental.Client.Document,
			rental.Vehicle.Plate, rental.Vehicle.Name,
			rental.PickupTime.Format(reportTimeLayout),
			status)
	}
	fmt.Fprintf(&b, "\nTotal: %d rental(s), %d active\n", len(rentals), active)

	return s.write("rentals.txt", b.String())
}

func (s *reportService) RentalReceipt(ctx context.Context, rentalID string) (string, error) {
	rental, err := s.rentals.GetByIDPrefix(ctx, rentalID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeader(&b, "RENTAL RECEIPT")
	fmt.Fprintf(&b, "Rental:   %s\n", rental.ID)
	fmt.Fprintf(&b, "Client:   %s (%s)\n", rental.Client.Name, rental.Client.Document)
	fmt.Fprintf(&b, "Vehicle:  %s - %s (%s)\n", rental.Vehicle.Plate, rental.Vehicle.Name, rental.Vehicle.Category)
	fmt.Fprintf(&b, "Pickup:   %s at %s\n", rental.PickupTime.Format(reportTimeLayout), rental.PickupLocation)
	fmt.Fprintf(&b, "Daily rate: %s\n", rental.Vehicle.Category.DailyRate().StringFixed(2))

	return s.write(fmt.Sprintf("receipt_rental_%s.txt", shortID(rental.ID)), b.String())
}

func (s *reportService) ReturnReceipt(ctx context.Context, rentalID string) (string, error) {
	rental, err := s.rentals.GetByIDPrefix(ctx, rentalID)
	if err != nil {
		return "", err
	}
	if rental.Active {
		return "", errors.Wrapf(domain.ErrInvalidState, "rental %s has not been returned", rental.ID)
	}

	var b strings.Builder
	writeHeader(&b, "RETURN RECEIPT")
	fmt.Fprintf(&b, "Rental:   %s\n", rental.ID)
	fmt.Fprintf(&b, "Client:   %s (%s)\n", rental.Client.Name, rental.Client.Document)
	fmt.Fprintf(&b, "Vehicle:  %s - %s (%s)\n", rental.Vehicle.Plate, rental.Vehicle.Name, rental.Vehicle.Category)
	fmt.Fprintf(&b, "Pickup:   %s at %s\n", rental.PickupTime.Format(reportTimeLayout), rental.PickupLocation)
	fmt.Fprintf(&b, "Return:   %s at %s\n", rental.ReturnTime.Format(reportTimeLayout), rental.ReturnLocation)
	fmt.Fprintf(&b, "Total:    %s\n", rental.Total.StringFixed(2))

	return s.write(fmt.Sprintf("receipt_return_%s.txt", shortID(rental.ID)), b.String())
}

func (s *reportService) write(name, content string) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write report %s", name)
	}
	s.log.Info("Report written", "path", path)
	return path, nil
}

func writeHeader(b *strings.Builder, title string) {
	line := strings.Repeat("=", 72)
	b.WriteString(line + "\n")
	b.WriteString(title + "\n")
	b.WriteString(line + "\n\n")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
