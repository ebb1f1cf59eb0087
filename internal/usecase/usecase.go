package usecase

import (
	"context"

	"github.com/koliko-tech/admin-backend/internal/domain"
)

type AuthUC interface {
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
	Logout(ctx context.Context, token string) error
	Validate(token string) bool
}

type ProductUC interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderUC interface {
	GetAll(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, id string, patch *OrderPatch) (*domain.Order, error)
}

type CustomerUC interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	UpdateStatus(ctx context.Context, id string, status domain.CustomerStatus) (*domain.Customer, error)
}

type RepairUC interface {
	GetAll(ctx context.Context) ([]domain.RepairRequest, error)
	Create(ctx context.Context, req *CreateRepairReq) (*domain.RepairRequest, error)
	Update(ctx context.Context, id string, patch *RepairPatch) (*domain.RepairRequest, error)
}

type InventoryUC interface {
	GetLogs(ctx context.Context) ([]domain.InventoryLog, error)
	AdjustStock(ctx context.Context, req *AdjustStockReq) (*domain.InventoryLog, error)
}

type PromotionUC interface {
	GetAll(ctx context.Context) ([]PromotionInfo, error)
	Create(ctx context.Context, req *CreatePromotionReq) (*PromotionInfo, error)
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) (*PromotionInfo, error)
}

type FinanceUC interface {
	GetTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetSummary(ctx context.Context) (*FinanceSummary, error)
}

type AnalyticsUC interface {
	GetRevenue(ctx context.Context) ([]MonthlyRevenue, error)
	GetCategorySales(ctx context.Context) ([]AnalyticsPoint, error)
	GetPaymentStats(ctx context.Context) ([]AnalyticsPoint, error)
	GetTopSellingProducts(ctx context.Context) ([]AnalyticsPoint, error)
}

type SettingsUC interface {
	UpdateProfile(ctx context.Context, req *ProfileUpdateReq) (*Profile, error)
	UpdatePreferences(ctx context.Context, req *PreferencesUpdateReq) (*Preferences, error)
}
