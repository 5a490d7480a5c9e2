package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/datagen"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository/memory"
	"fleetrent-backend/internal/service"
	"fleetrent-backend/internal/storage"
)

const timeLayout = "2006-01-02 15:04"

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting fleetrent", "data_dir", cfg.Data.Dir, "reports_dir", cfg.Reports.Dir)

	store, err := storage.NewFileStore(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize data store: %v", err)
	}

	clientRepo := memory.NewClientRepository(store)
	vehicleRepo := memory.NewVehicleRepository(store)
	rentalRepo := memory.NewRentalRepository(store, clientRepo, vehicleRepo)

	// Rentals resolve key references, so clients and vehicles load first.
	ctx := context.Background()
	if err := clientRepo.Load(ctx); err != nil {
		log.Fatalf("Failed to load clients: %v", err)
	}
	if err := vehicleRepo.Load(ctx); err != nil {
		log.Fatalf("Failed to load vehicles: %v", err)
	}
	if err := rentalRepo.Load(ctx); err != nil {
		log.Fatalf("Failed to load rentals: %v", err)
	}

	clientSvc := service.NewClientService(clientRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	rentalSvc := service.NewRentalService(rentalRepo, clientRepo, vehicleRepo, uuid.NewString)
	reportSvc, err := service.NewReportService(rentalSvc, cfg.Reports.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize reports: %v", err)
	}

	m := &menu{
		in:       bufio.NewScanner(os.Stdin),
		clients:  clientSvc,
		vehicles: vehicleSvc,
		rentals:  rentalSvc,
		reports:  reportSvc,
	}
	m.run(ctx)
}

type menu struct {
	in       *bufio.Scanner
	clients  service.ClientService
	vehicles service.VehicleService
	rentals  service.RentalService
	reports  service.ReportService
}

func (m *menu) run(ctx context.Context) {
	for {
		fmt.Println()
		fmt.Println("=== Vehicle Rental ===")
		fmt.Println(" 1. Register individual client")
		fmt.Println(" 2. Register organization client")
		fmt.Println(" 3. List clients")
		fmt.Println(" 4. Register vehicle")
		fmt.Println(" 5. List vehicles")
		fmt.Println(" 6. List available vehicles")
		fmt.Println(" 7. Rent vehicle")
		fmt.Println(" 8. Return vehicle")
		fmt.Println(" 9. List active rentals")
		fmt.Println("10. List finalized rentals")
		fmt.Println("11. Revenue report")
		fmt.Println("12. Rankings")
		fmt.Println("13. Full rentals report")
		fmt.Println("14. Seed demo data")
		fmt.Println(" 0. Exit")

		switch m.prompt("Option") {
		case "1":
			m.registerClient(ctx, domain.ClientKindIndividual)
		case "2":
			m.registerClient(ctx, domain.ClientKindOrganization)
		case "3":
			m.listClients(ctx)
		case "4":
			m.registerVehicle(ctx)
		case "5":
			m.listVehicles(ctx, false)
		case "6":
			m.listVehicles(ctx, true)
		case "7":
			m.rent(ctx)
		case "8":
			m.returnVehicle(ctx)
		case "9":
			m.listRentals(ctx, true)
		case "10":
			m.listRentals(ctx, false)
		case "11":
			m.revenueReport(ctx)
		case "12":
			m.rankings(ctx)
		case "13":
			m.rentalsReport(ctx)
		case "14":
			m.seed(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown option")
		}
	}
}

func (m *menu) registerClient(ctx context.Context, kind domain.ClientKind) {
	document := m.prompt("Document (digits only)")
	name := m.prompt("Name")

	client := &domain.Client{Document: document, Name: name, Kind: kind}
	if err := m.clients.Register(ctx, client); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Client registered.")
}

func (m *menu) listClients(ctx context.Context) {
	clients, err := m.clients.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, c := range clients {
		fmt.Printf("%s | %-12s | %s\n", c.Document, c.Kind, c.Name)
	}
	fmt.Printf("%d client(s)\n", len(clients))
}

func (m *menu) registerVehicle(ctx context.Context) {
	plate := strings.ToUpper(m.prompt("Plate (AAA-9999 or AAA9A99)"))
	name := m.prompt("Model")
	category := domain.VehicleCategory(strings.ToUpper(m.prompt("Category (SMALL/MEDIUM/SUV)")))

	if err := m.vehicles.Register(ctx, domain.NewVehicle(plate, name, category)); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Vehicle registered.")
}

func (m *menu) listVehicles(ctx context.Context, onlyAvailable bool) {
	var (
		vehicles []*domain.Vehicle
		err      error
	)
	if onlyAvailable {
		vehicles, err = m.vehicles.ListAvailable(ctx)
	} else {
		vehicles, err = m.vehicles.List(ctx)
	}
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, v := range vehicles {
		status := "available"
		if !v.Available {
			status = "rented"
		}
		fmt.Printf("%s | %-8s | %-12s | %s (daily %s)\n", v.Plate, v.Category, status, v.Name, v.Category.DailyRate().StringFixed(2))
	}
	fmt.Printf("%d vehicle(s)\n", len(vehicles))
}

func (m *menu) rent(ctx context.Context) {
	document := m.prompt("Client document")
	plate := strings.ToUpper(m.prompt("Vehicle plate"))
	pickup, ok := m.promptTime("Pickup time")
	if !ok {
		return
	}
	location := m.prompt("Pickup location")

	rental, err := m.rentals.Rent(ctx, document, plate, pickup, location)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Rental %s started.\n", shortID(rental.ID))
}

func (m *menu) returnVehicle(ctx context.Context) {
	prefix := m.prompt("Rental ID (or prefix)")
	rental, err := m.rentals.GetByIDPrefix(ctx, prefix)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	returnTime, ok := m.promptTime("Return time")
	if !ok {
		return
	}
	location := m.prompt("Return location")

	rental, err = m.rentals.Return(ctx, rental.ID, returnTime, location)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Rental %s finalized. Total: %s\n", shortID(rental.ID), rental.Total.StringFixed(2))

	if path, err := m.reports.ReturnReceipt(ctx, rental.ID); err == nil {
		fmt.Println("Receipt written to", path)
	}
}

func (m *menu) listRentals(ctx context.Context, active bool) {
	var (
		rentals []*domain.Rental
		err     error
	)
	if active {
		rentals, err = m.rentals.ListActive(ctx)
	} else {
		rentals, err = m.rentals.ListFinalized(ctx)
	}
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, r := range rentals {
		status := "active"
		if !r.Active {
			status = fmt.Sprintf("finalized, total %s", r.Total.StringFixed(2))
		}
		fmt.Printf("%s | %s | %s | %s | %s\n",
			shortID(r.ID), r.Client.Name, r.Vehicle.Plate, r.PickupTime.Format(timeLayout), status)
	}
	fmt.Printf("%d rental(s)\n", len(rentals))
}

func (m *menu) revenueReport(ctx context.Context) {
	from, ok := m.promptTime("From")
	if !ok {
		return
	}
	to, ok := m.promptTime("To")
	if !ok {
		return
	}

	revenue, err := m.rentals.RevenueBetween(ctx, from, to)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Revenue in period:", revenue.StringFixed(2))

	if path, err := m.reports.RevenueReport(ctx, from, to); err == nil {
		fmt.Println("Report written to", path)
	}
}

func (m *menu) rankings(ctx context.Context) {
	vehicles, err := m.rentals.TopRentedVehicles(ctx, 10)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Most rented vehicles:")
	for i, entry := range vehicles {
		fmt.Printf("%2d. %s - %s: %d\n", i+1, entry.Plate, entry.Name, entry.Rentals)
	}

	clients, err := m.rentals.TopClients(ctx, 10)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Top clients:")
	for i, entry := range clients {
		fmt.Printf("%2d. %s - %s: %d\n", i+1, entry.Document, entry.Name, entry.Rentals)
	}

	if path, err := m.reports.TopVehiclesReport(ctx); err == nil {
		fmt.Println("Report written to", path)
	}
	if path, err := m.reports.TopClientsReport(ctx); err == nil {
		fmt.Println("Report written to", path)
	}
}

func (m *menu) rentalsReport(ctx context.Context) {
	path, err := m.reports.FullRentalsReport(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Report written to", path)
}

func (m *menu) seed(ctx context.Context) {
	n, err := strconv.Atoi(m.prompt("How many clients/vehicles"))
	if err != nil || n <= 0 {
		fmt.Println("Invalid count")
		return
	}
	gen := datagen.New(time.Now().UnixNano(), m.clients, m.vehicles, m.rentals)
	if err := gen.Seed(ctx, n, n); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Demo data seeded.")
}

func (m *menu) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !m.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *menu) promptTime(label string) (time.Time, bool) {
	raw := m.prompt(label + " (" + timeLayout + ")")
	t, err := time.ParseInLocation(timeLayout, raw, time.Local)
	if err != nil {
		fmt.Println("Invalid time:", err)
		return time.Time{}, false
	}
	return t, true
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
