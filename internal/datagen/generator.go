package datagen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/service"
)

var individualNames = []string{
	"Ana Silva", "João Santos", "Maria Oliveira", "Carlos Ferreira",
	"Fernanda Costa", "Roberto Lima", "Juliana Souza", "Pedro Alves",
	"Camila Rodrigues", "Lucas Martins", "Patricia Barbosa", "Rafael Dias",
}

var organizationNames = []string{
	"Tech Solutions Ltda", "Empresa ABC Ltda", "Inovação Digital Ltda",
	"Logística Express SA", "Consultoria Prime Ltda", "Sistemas Integrados SA",
	"Marketing Digital Ltda", "Comércio Global SA",
}

var modelsByCategory = map[domain.VehicleCategory][]string{
	domain.VehicleCategorySmall:  {"Gol 1.0", "Onix 1.4", "Ka 1.0", "Kwid 1.0", "Mobi 1.0", "Sandero 1.0"},
	domain.VehicleCategoryMedium: {"Civic 2.0", "Corolla 2.0", "Jetta 2.0", "Cruze 1.4", "Virtus 1.6"},
	domain.VehicleCategorySUV:    {"Hilux 2.8", "Ranger 3.2", "S10 2.8", "SW4 2.8", "Tiguan 2.0"},
}

var locations = []string{
	"Filial Centro", "Filial Shopping", "Filial Norte", "Filial Sul",
	"Aeroporto Internacional",
}

var categories = []domain.VehicleCategory{
	domain.VehicleCategorySmall, domain.VehicleCategoryMedium, domain.VehicleCategorySUV,
}

// Generator seeds the repositories with plausible demo data through
// the public service operations, never touching repositories directly.
// The seed makes a run reproducible.
type Generator struct {
	rng      *rand.Rand
	clients  service.ClientService
	vehicles service.VehicleService
	rentals  service.RentalService
}

func New(seed int64, clients service.ClientService, vehicles service.VehicleService, rentals service.RentalService) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		clients:  clients,
		vehicles: vehicles,
		rentals:  rentals,
	}
}

// Seed registers nClients clients and nVehicles vehicles, then rents
// out roughly half the fleet and returns about half of those rentals.
func (g *Generator) Seed(ctx context.Context, nClients, nVehicles int) error {
	clients, err := g.seedClients(ctx, nClients)
	if err != nil {
		return err
	}
	vehicles, err := g.seedVehicles(ctx, nVehicles)
	if err != nil {
		return err
	}
	if err := g.seedRentals(ctx, clients, vehicles); err != nil {
		return err
	}
	logger.Info("Demo data seeded", "clients", len(clients), "vehicles", len(vehicles))
	return nil
}

func (g *Generator) seedClients(ctx context.Context, n int) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, n)
	for i := 0; i < n; i++ {
		var client *domain.Client
		if g.rng.Intn(2) == 0 {
			client = domain.NewIndividual(g.cpf(), g.pick(individualNames))
		} else {
			client = domain.NewOrganization(g.cnpj(), g.pick(organizationNames))
		}
		err := g.clients.Register(ctx, client)
		if errors.Is(err, domain.ErrConflict) {
			continue // duplicate document, rare with random digits
		}
		if err != nil {
			return nil, err
		}
		out = append(out, client)
	}
	return out, nil
}

func (g *Generator) seedVehicles(ctx context.Context, n int) ([]*domain.Vehicle, error) {
	out := make([]*domain.Vehicle, 0, n)
	for i := 0; i < n; i++ {
		category := categories[g.rng.Intn(len(categories))]
		vehicle := domain.NewVehicle(g.plate(), g.pick(modelsByCategory[category]), category)
		err := g.vehicles.Register(ctx, vehicle)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, vehicle)
	}
	return out, nil
}

func (g *Generator) seedRentals(ctx context.Context, clients []*domain.Client, vehicles []*domain.Vehicle) error {
	if len(clients) == 0 || len(vehicles) == 0 {
		return nil
	}
	for i, vehicle := range vehicles {
		if i%2 != 0 {
			continue
		}
		client := clients[g.rng.Intn(len(clients))]
		pickup := time.Now().Add(-time.Duration(1+g.rng.Intn(240)) * time.Hour).Truncate(time.Minute)

		rental, err := g.rentals.Rent(ctx, client.Document, vehicle.Plate, pickup, g.pick(locations))
		if err != nil {
			return err
		}
		if g.rng.Intn(2) == 0 {
			ret := pickup.Add(time.Duration(2+g.rng.Intn(200)) * time.Hour)
			if _, err := g.rentals.Return(ctx, rental.ID, ret, g.pick(locations)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Generator) cpf() string {
	return fmt.Sprintf("%011d", g.rng.Int63n(100_000_000_000))
}

func (g *Generator) cnpj() string {
	return fmt.Sprintf("%014d", g.rng.Int63n(100_000_000_000_000))
}

// plate alternates between the legacy and Mercosul formats.
func (g *Generator) plate() string {
	letter := func() byte { return byte('A' + g.rng.Intn(26)) }
	if g.rng.Intn(2) == 0 {
		return fmt.Sprintf("%c%c%c-%04d", letter(), letter(), letter(), g.rng.Intn(10000))
	}
	return fmt.Sprintf("%c%c%c%d%c%02d", letter(), letter(), letter(), g.rng.Intn(10), letter(), g.rng.Intn(100))
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}
