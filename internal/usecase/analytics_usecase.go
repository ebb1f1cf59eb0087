package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

const orderDateLayout = "2006-01-02"

// AnalyticsUseCase считает витрины аналитики из заказов на момент чтения.
// Ничего не хранится: производные данные не могут разойтись с источником.
type AnalyticsUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	logger      logger.Logger
}

func NewAnalyticsUC(orderRepo OrderRepository, productRepo ProductRepository, logger logger.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetRevenue возвращает выручку и число заказов по месяцам.
// Отменённые заказы не учитываются.
func (a *AnalyticsUseCase) GetRevenue(ctx context.Context) ([]MonthlyRevenue, error) {
	const op = "AnalyticsUseCase.GetRevenue"

	orders, err := a.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	type bucket struct {
		revenue int64
		orders  int64
	}
	buckets := make(map[time.Month]bucket)

	for _, order := range orders {
		if order.Status == domain.OrderCancelled {
			continue
		}

		date, err := time.Parse(orderDateLayout, order.Date)
		if err != nil {
			a.logger.Warnf("%s: unparseable order date %q (order %s)", op, order.Date, order.ID)
			continue
		}

		b := buckets[date.Month()]
		b.revenue += order.Total
		b.orders++
		buckets[date.Month()] = b
	}

	result := make([]MonthlyRevenue, 0, len(buckets))
	for m := time.January; m <= time.December; m++ {
		b, ok := buckets[m]
		if !ok {
			continue
		}
		result = append(result, MonthlyRevenue{
			Month:   m.String()[:3],
			Revenue: b.revenue,
			Orders:  b.orders,
		})
	}

	return result, nil
}

// GetCategorySales возвращает проданные количества по категориям товаров.
// Позиции с неизвестным товаром попадают в категорию "Other".
func (a *AnalyticsUseCase) GetCategorySales(ctx context.Context) ([]AnalyticsPoint, error) {
	const op = "AnalyticsUseCase.GetCategorySales"

	orders, err := a.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := a.productRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categoryByProduct := make(map[string]string, len(products))
	for _, product := range products {
		categoryByProduct[product.ID] = product.Category
	}

	totals := make(map[string]int64)
	for _, order := range orders {
		if order.Status == domain.OrderCancelled {
			continue
		}
		for _, item := range order.Items {
			category, ok := categoryByProduct[item.ProductID]
			if !ok {
				category = "Other"
			}
			totals[category] += item.Quantity
		}
	}

	return sortedPoints(totals, 0), nil
}

// GetPaymentStats возвращает распределение заказов по способам оплаты.
func (a *AnalyticsUseCase) GetPaymentStats(ctx context.Context) ([]AnalyticsPoint, error) {
	const op = "AnalyticsUseCase.GetPaymentStats"

	orders, err := a.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	totals := make(map[string]int64)
	for _, order := range orders {
		totals[string(order.PaymentMethod)]++
	}

	return sortedPoints(totals, 0), nil
}

// GetTopSellingProducts возвращает пять самых продаваемых товаров по количеству.
func (a *AnalyticsUseCase) GetTopSellingProducts(ctx context.Context) ([]AnalyticsPoint, error) {
	const (
		op    = "AnalyticsUseCase.GetTopSellingProducts"
		limit = 5
	)

	orders, err := a.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	totals := make(map[string]int64)
	for _, order := range orders {
		if order.Status == domain.OrderCancelled {
			continue
		}
		for _, item := range order.Items {
			totals[item.ProductName] += item.Quantity
		}
	}

	return sortedPoints(totals, limit), nil
}

// sortedPoints превращает счётчики в отсортированный по убыванию список.
// limit == 0 означает «без ограничения».
func sortedPoints(totals map[string]int64, limit int) []AnalyticsPoint {
	points := make([]AnalyticsPoint, 0, len(totals))
	for name, value := range totals {
		points = append(points, AnalyticsPoint{Name: name, Value: value})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})

	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}

	return points
}
