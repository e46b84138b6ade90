package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"orderhub/internal/adapters/out/cache"
	"orderhub/internal/core/application/ledger"
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.PublicID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetForUpdate(ctx context.Context, id kernel.PublicID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) ExistsByTaxID(ctx context.Context, taxID partner.TaxID) (bool, error) {
	args := m.Called(ctx, taxID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPartnerRepository) GetAll(_ context.Context, _ ports.Page) ([]*partner.Partner, int64, error) {
	panic("not used by commands")
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.PublicID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.PublicID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatus(context.Context, order.Status, ports.Page) ([]*order.Order, int64, error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) GetAllCreatedBetween(context.Context, time.Time, time.Time, ports.Page) ([]*order.Order, int64, error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) GetAll(context.Context, ports.Page) ([]*order.Order, int64, error) {
	panic("not used by commands")
}

type MockUoW struct {
	mock.Mock
	partners *MockPartnerRepository
	orders   *MockOrderRepository
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	return m.partners
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	return m.Called().Get(0).(commands.PartnerUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStatusChange(ctx context.Context, o *order.Order, previous, current order.Status) {
	m.Called(ctx, o, previous, current)
}

// fixture wires the mocks behind one unit of work and a real ledger.
type fixture struct {
	uow      *MockUoW
	factory  *MockUoWFactory
	partners *MockPartnerRepository
	orders   *MockOrderRepository
	notifier *MockNotifier
	ledger   *ledger.Ledger
	ids      *kernel.SequentialPublicIDGenerator
	logger   *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	partners := new(MockPartnerRepository)
	orders := new(MockOrderRepository)
	uow := &MockUoW{partners: partners, orders: orders}
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	logger := slog.New(slog.DiscardHandler)
	l, err := ledger.New(cache.NewAvailableCreditCache(16, time.Minute), nil, logger)
	require.NoError(t, err)

	return &fixture{
		uow:      uow,
		factory:  factory,
		partners: partners,
		orders:   orders,
		notifier: new(MockNotifier),
		ledger:   l,
		ids:      kernel.NewSequentialPublicIDGenerator(),
		logger:   logger,
	}
}

func (f *fixture) partnerFactory() *MockPartnerUoWFactory {
	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(f.uow).Once()
	return factory
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.uow.AssertExpectations(t)
	f.partners.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

var (
	partnerID = kernel.MustPublicIDFromString("PTN_00000001")
	orderID   = kernel.MustPublicIDFromString("ORD_00000042")
)

func restorePartner(t *testing.T, limit, used int64, active bool) *partner.Partner {
	t.Helper()
	taxID, err := partner.NewTaxID("12345678000195")
	require.NoError(t, err)
	p, err := partner.RestorePartner(
		partnerID, "Acme", taxID,
		kernel.MoneyFromInt(limit), kernel.MoneyFromInt(used),
		active, time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return p
}

func restoreOrder(t *testing.T, status order.Status, total int64) *order.Order {
	t.Helper()
	item, err := order.NewItem("Widget", 1, kernel.MoneyFromInt(total))
	require.NoError(t, err)
	o, err := order.RestoreOrder(orderID, partnerID, []order.Item{item}, status, "", time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)
	return o
}
