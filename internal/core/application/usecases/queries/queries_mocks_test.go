package queries_test

import (
	"context"
	"testing"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct {
	mock.Mock
	ports.OrderRepository
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.PublicID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatus(ctx context.Context, s order.Status, page ports.Page) ([]*order.Order, int64, error) {
	args := m.Called(ctx, s, page)
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) GetAllCreatedBetween(ctx context.Context, from, to time.Time, page ports.Page) ([]*order.Order, int64, error) {
	args := m.Called(ctx, from, to, page)
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) GetAll(ctx context.Context, page ports.Page) ([]*order.Order, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

type MockPartnerRepository struct {
	mock.Mock
	ports.PartnerRepository
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.PublicID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetAll(ctx context.Context, page ports.Page) ([]*partner.Partner, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]*partner.Partner), args.Get(1).(int64), args.Error(2)
}

type stubReaders struct {
	partners *MockPartnerRepository
	orders   *MockOrderRepository
}

func (r stubReaders) PartnerRepository() ports.PartnerRepository { return r.partners }
func (r stubReaders) OrderRepository() ports.OrderRepository     { return r.orders }

func newReaders() stubReaders {
	return stubReaders{partners: new(MockPartnerRepository), orders: new(MockOrderRepository)}
}

var (
	partnerID = kernel.MustPublicIDFromString("PTN_00000001")
	orderID   = kernel.MustPublicIDFromString("ORD_00000001")
)

func sampleOrder(t *testing.T) *order.Order {
	t.Helper()
	a, err := order.NewItem("Steel beam", 2, kernel.MustMoneyFromString("1000.00"))
	require.NoError(t, err)
	b, err := order.NewItem("Bolt kit", 3, kernel.MustMoneyFromString("0.3333"))
	require.NoError(t, err)
	o, err := order.NewOrder(orderID, partnerID, []order.Item{a, b}, "dock 3")
	require.NoError(t, err)
	return o
}

func samplePartner(t *testing.T) *partner.Partner {
	t.Helper()
	taxID, err := partner.NewTaxID("12345678000195")
	require.NoError(t, err)
	p, err := partner.NewPartner(partnerID, "Acme", taxID, kernel.MoneyFromInt(10000))
	require.NoError(t, err)
	require.NoError(t, p.Reserve(kernel.MoneyFromInt(2500)))
	return p
}
