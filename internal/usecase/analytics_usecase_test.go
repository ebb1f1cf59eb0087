package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type stubOrderRepo struct {
	orders []domain.Order
}

func (s *stubOrderRepo) GetAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders, nil
}

func (s *stubOrderRepo) Update(ctx context.Context, id string, patch *OrderPatch) (*domain.Order, error) {
	panic("not used in analytics tests")
}

type stubProductRepo struct {
	products []domain.Product
}

func (s *stubProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	panic("not used in analytics tests")
}

func (s *stubProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	panic("not used in analytics tests")
}

func (s *stubProductRepo) Delete(ctx context.Context, id string) error {
	panic("not used in analytics tests")
}

func analyticsFixture() *AnalyticsUseCase {
	orders := []domain.Order{
		{
			ID: "ORD-1", Total: 10000, Status: domain.OrderDelivered, Date: "2023-09-28",
			PaymentMethod: domain.PaymentVisa,
			Items:         []domain.OrderItem{{ProductID: "1", ProductName: "Koliko Runner V1", Quantity: 2}},
		},
		{
			ID: "ORD-2", Total: 5000, Status: domain.OrderProcessing, Date: "2023-10-02",
			PaymentMethod: domain.PaymentMobileMoney,
			Items:         []domain.OrderItem{{ProductID: "2", ProductName: "Urban Street Loafer", Quantity: 1}},
		},
		{
			ID: "ORD-3", Total: 7000, Status: domain.OrderPending, Date: "2023-10-10",
			PaymentMethod: domain.PaymentMobileMoney,
			Items:         []domain.OrderItem{{ProductID: "missing", ProductName: "Discontinued Boot", Quantity: 3}},
		},
		{
			// отменённый заказ не должен попадать ни в одну витрину, кроме оплат
			ID: "ORD-4", Total: 9000, Status: domain.OrderCancelled, Date: "2023-10-12",
			PaymentMethod: domain.PaymentGooglePay,
			Items:         []domain.OrderItem{{ProductID: "1", ProductName: "Koliko Runner V1", Quantity: 5}},
		},
	}

	products := []domain.Product{
		{ID: "1", Name: "Koliko Runner V1", Category: "Sneakers"},
		{ID: "2", Name: "Urban Street Loafer", Category: "Loafers"},
	}

	return NewAnalyticsUC(
		&stubOrderRepo{orders: orders},
		&stubProductRepo{products: products},
		logger.NewSlogLogger(),
	)
}

func TestGetRevenue_GroupsByMonthSkippingCancelled(t *testing.T) {
	uc := analyticsFixture()

	revenue, err := uc.GetRevenue(context.Background())
	require.NoError(t, err)

	require.Len(t, revenue, 2)
	assert.Equal(t, MonthlyRevenue{Month: "Sep", Revenue: 10000, Orders: 1}, revenue[0])
	assert.Equal(t, MonthlyRevenue{Month: "Oct", Revenue: 12000, Orders: 2}, revenue[1])
}

func TestGetCategorySales_UnknownProductFallsBackToOther(t *testing.T) {
	uc := analyticsFixture()

	points, err := uc.GetCategorySales(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []AnalyticsPoint{
		{Name: "Other", Value: 3},
		{Name: "Sneakers", Value: 2},
		{Name: "Loafers", Value: 1},
	}, points)
}

func TestGetPaymentStats_CountsAllOrders(t *testing.T) {
	uc := analyticsFixture()

	points, err := uc.GetPaymentStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []AnalyticsPoint{
		{Name: "Mobile Money", Value: 2},
		{Name: "Google Pay", Value: 1},
		{Name: "Visa", Value: 1},
	}, points)
}

func TestGetTopSellingProducts_SortedByQuantity(t *testing.T) {
	uc := analyticsFixture()

	points, err := uc.GetTopSellingProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []AnalyticsPoint{
		{Name: "Discontinued Boot", Value: 3},
		{Name: "Koliko Runner V1", Value: 2},
		{Name: "Urban Street Loafer", Value: 1},
	}, points)
}
