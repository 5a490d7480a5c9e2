package service_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"fleetrent-backend/internal/domain"
)

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Save(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByDocument(ctx context.Context, document string) (*domain.Client, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Filter(ctx context.Context, pred func(*domain.Client) bool) ([]*domain.Client, error) {
	args := m.Called(ctx, pred)
	return args.Get(0).([]*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Paginate(ctx context.Context, page, size int, pred func(*domain.Client) bool) ([]*domain.Client, error) {
	args := m.Called(ctx, page, size, pred)
	return args.Get(0).([]*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Count(ctx context.Context, pred func(*domain.Client) bool) (int, error) {
	args := m.Called(ctx, pred)
	return args.Int(0), args.Error(1)
}
func (m *MockClientRepo) Remove(ctx context.Context, document string) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}
func (m *MockClientRepo) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]*domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Filter(ctx context.Context, pred func(*domain.Vehicle) bool) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, pred)
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Paginate(ctx context.Context, page, size int, pred func(*domain.Vehicle) bool) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, page, size, pred)
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Count(ctx context.Context, pred func(*domain.Vehicle) bool) (int, error) {
	args := m.Called(ctx, pred)
	return args.Int(0), args.Error(1)
}
func (m *MockVehicleRepo) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Save(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetByIDPrefix(ctx context.Context, prefix string) (*domain.Rental, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]*domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Filter(ctx context.Context, pred func(*domain.Rental) bool) ([]*domain.Rental, error) {
	args := m.Called(ctx, pred)
	return args.Get(0).([]*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Paginate(ctx context.Context, page, size int, pred func(*domain.Rental) bool) ([]*domain.Rental, error) {
	args := m.Called(ctx, page, size, pred)
	return args.Get(0).([]*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Count(ctx context.Context, pred func(*domain.Rental) bool) (int, error) {
	args := m.Called(ctx, pred)
	return args.Int(0), args.Error(1)
}
func (m *MockRentalRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockRentalRepo) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockRentalRepo) RevenueByCategory(ctx context.Context) (map[domain.VehicleCategory]decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.VehicleCategory]decimal.Decimal), args.Error(1)
}
func (m *MockRentalRepo) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
