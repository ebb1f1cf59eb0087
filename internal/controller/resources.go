package controller

import (
	"context"
	"time"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/e"
)

// Типизированные контроллеры экранов. Каждый связывает Controller
// с usecase нужного ресурса, оптимистичные мутации строят локальную
// версию записи из текущей и подтверждают её ответом usecase-слоя.

// ProductsController — экран каталога товаров.
type ProductsController struct {
	*Controller[domain.Product]
	uc usecase.ProductUC
}

func NewProductsController(uc usecase.ProductUC) *ProductsController {
	return &ProductsController{
		Controller: New(uc.GetAll),
		uc:         uc,
	}
}

func (c *ProductsController) Create(ctx context.Context, req *usecase.CreateProductReq) error {
	return c.Add(ctx, func(ctx context.Context) (domain.Product, error) {
		created, err := c.uc.Create(ctx, req)
		if err != nil {
			return domain.Product{}, err
		}
		return *created, nil
	})
}

func (c *ProductsController) Update(ctx context.Context, product domain.Product) error {
	return c.ApplyOptimistic(ctx, product, func(ctx context.Context) (domain.Product, error) {
		updated, err := c.uc.Update(ctx, &product)
		if err != nil {
			return domain.Product{}, err
		}
		return *updated, nil
	})
}

func (c *ProductsController) Delete(ctx context.Context, id string) error {
	return c.Remove(ctx, id, func(ctx context.Context) error {
		return c.uc.Delete(ctx, id)
	})
}

// OrdersController — экран заказов.
type OrdersController struct {
	*Controller[domain.Order]
	uc usecase.OrderUC
}

func NewOrdersController(uc usecase.OrderUC) *OrdersController {
	return &OrdersController{
		Controller: New(uc.GetAll),
		uc:         uc,
	}
}

// Patch применяет частичное обновление заказа. Локальная версия строится
// из текущей записи, поэтому незатронутые поля не теряются.
func (c *OrdersController) Patch(ctx context.Context, id string, patch *usecase.OrderPatch) error {
	current, ok := c.byID(id)
	if !ok {
		return e.ErrNotFound
	}

	optimistic := current
	if patch.Status != nil {
		optimistic.Status = *patch.Status
	}
	if patch.TrackingNumber != nil {
		optimistic.TrackingNumber = *patch.TrackingNumber
	}
	if patch.EstimatedDeliveryDate != nil {
		optimistic.EstimatedDeliveryDate = *patch.EstimatedDeliveryDate
	}

	return c.ApplyOptimistic(ctx, optimistic, func(ctx context.Context) (domain.Order, error) {
		updated, err := c.uc.Update(ctx, id, patch)
		if err != nil {
			return domain.Order{}, err
		}
		return *updated, nil
	})
}

func (c *OrdersController) byID(id string) (domain.Order, bool) {
	for _, order := range c.Items() {
		if order.ID == id {
			return order, true
		}
	}
	return domain.Order{}, false
}

// CustomersController — экран клиентов.
type CustomersController struct {
	*Controller[domain.Customer]
	uc usecase.CustomerUC
}

func NewCustomersController(uc usecase.CustomerUC) *CustomersController {
	return &CustomersController{
		Controller: New(uc.GetAll),
		uc:         uc,
	}
}

func (c *CustomersController) SetStatus(ctx context.Context, id string, status domain.CustomerStatus) error {
	for _, customer := range c.Items() {
		if customer.ID != id {
			continue
		}

		optimistic := customer
		optimistic.Status = status

		return c.ApplyOptimistic(ctx, optimistic, func(ctx context.Context) (domain.Customer, error) {
			updated, err := c.uc.UpdateStatus(ctx, id, status)
			if err != nil {
				return domain.Customer{}, err
			}
			return *updated, nil
		})
	}
	return e.ErrNotFound
}

// RepairsController — экран заявок на ремонт.
type RepairsController struct {
	*Controller[domain.RepairRequest]
	uc usecase.RepairUC
}

func NewRepairsController(uc usecase.RepairUC) *RepairsController {
	return &RepairsController{
		Controller: New(uc.GetAll),
		uc:         uc,
	}
}

func (c *RepairsController) Create(ctx context.Context, req *usecase.CreateRepairReq) error {
	return c.Add(ctx, func(ctx context.Context) (domain.RepairRequest, error) {
		created, err := c.uc.Create(ctx, req)
		if err != nil {
			return domain.RepairRequest{}, err
		}
		return *created, nil
	})
}

func (c *RepairsController) Patch(ctx context.Context, id string, patch *usecase.RepairPatch) error {
	for _, repair := range c.Items() {
		if repair.ID != id {
			continue
		}

		optimistic := repair
		if patch.Status != nil {
			optimistic.Status = *patch.Status
		}
		if patch.EstimatedCost != nil {
			optimistic.EstimatedCost = *patch.EstimatedCost
		}
		if patch.EstimatedCompletionDate != nil {
			optimistic.EstimatedCompletionDate = *patch.EstimatedCompletionDate
		}
		if patch.IssueDescription != nil {
			optimistic.IssueDescription = *patch.IssueDescription
		}

		return c.ApplyOptimistic(ctx, optimistic, func(ctx context.Context) (domain.RepairRequest, error) {
			updated, err := c.uc.Update(ctx, id, patch)
			if err != nil {
				return domain.RepairRequest{}, err
			}
			return *updated, nil
		})
	}
	return e.ErrNotFound
}

// InventoryController — экран журнала склада.
// Корректировка не оптимистична: ID записи и итоговый остаток известны
// только после ответа хранилища.
type InventoryController struct {
	*Controller[domain.InventoryLog]
	uc usecase.InventoryUC
}

func NewInventoryController(uc usecase.InventoryUC) *InventoryController {
	return &InventoryController{
		Controller: New(uc.GetLogs),
		uc:         uc,
	}
}

func (c *InventoryController) AdjustStock(ctx context.Context, req *usecase.AdjustStockReq) error {
	if err := c.Add(ctx, func(ctx context.Context) (domain.InventoryLog, error) {
		log, err := c.uc.AdjustStock(ctx, req)
		if err != nil {
			return domain.InventoryLog{}, err
		}
		return *log, nil
	}); err != nil {
		return err
	}

	// журнал показывается от новых к старым
	return c.Load(ctx)
}

// PromotionsController — экран промокодов.
type PromotionsController struct {
	*Controller[usecase.PromotionInfo]
	uc usecase.PromotionUC
}

func NewPromotionsController(uc usecase.PromotionUC) *PromotionsController {
	return &PromotionsController{
		Controller: New(uc.GetAll),
		uc:         uc,
	}
}

func (c *PromotionsController) Create(ctx context.Context, req *usecase.CreatePromotionReq) error {
	return c.Add(ctx, func(ctx context.Context) (usecase.PromotionInfo, error) {
		created, err := c.uc.Create(ctx, req)
		if err != nil {
			return usecase.PromotionInfo{}, err
		}
		return *created, nil
	})
}

func (c *PromotionsController) Delete(ctx context.Context, id string) error {
	return c.Remove(ctx, id, func(ctx context.Context) error {
		return c.uc.Delete(ctx, id)
	})
}

// Toggle оптимистично переключает флаг Disabled и пересчитывает
// производный статус, не дожидаясь ответа.
func (c *PromotionsController) Toggle(ctx context.Context, id string) error {
	for _, promo := range c.Items() {
		if promo.ID != id {
			continue
		}

		optimistic := promo
		optimistic.Disabled = !promo.Disabled
		optimistic.Status = optimistic.StatusAt(time.Now())

		return c.ApplyOptimistic(ctx, optimistic, func(ctx context.Context) (usecase.PromotionInfo, error) {
			updated, err := c.uc.Toggle(ctx, id)
			if err != nil {
				return usecase.PromotionInfo{}, err
			}
			return *updated, nil
		})
	}
	return e.ErrNotFound
}
