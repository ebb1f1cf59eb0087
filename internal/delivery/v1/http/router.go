package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// UseCases собирает все зависимости HTTP-слоя.
// ImagesInfra может быть nil, если объектное хранилище не сконфигурировано.
type UseCases struct {
	Auth      usecase.AuthUC
	Product   usecase.ProductUC
	Order     usecase.OrderUC
	Customer  usecase.CustomerUC
	Repair    usecase.RepairUC
	Inventory usecase.InventoryUC
	Promotion usecase.PromotionUC
	Finance   usecase.FinanceUC
	Analytics usecase.AnalyticsUC
	Settings  usecase.SettingsUC
	Images    usecase.ImagesInfra
}

func (r *Router) Init(uc UseCases) {
	authHandler := NewAuthHandler(uc.Auth, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Post("/auth/login", authHandler.login)

		// Всё остальное закрыто сессией администратора.
		v1.Group(func(private chi.Router) {
			private.Use(AuthMiddleware(uc.Auth))

			private.Post("/auth/logout", authHandler.logout)

			registerProductRoutes(private, NewProductHandler(uc.Product, r.logger))
			registerOrderRoutes(private, NewOrderHandler(uc.Order, r.logger))
			registerCustomerRoutes(private, NewCustomerHandler(uc.Customer, r.logger))
			registerRepairRoutes(private, NewRepairHandler(uc.Repair, r.logger))
			registerInventoryRoutes(private, NewInventoryHandler(uc.Inventory, r.logger))
			registerPromotionRoutes(private, NewPromotionHandler(uc.Promotion, r.logger))
			registerFinanceRoutes(private, NewFinanceHandler(uc.Finance, r.logger))
			registerAnalyticsRoutes(private, NewAnalyticsHandler(uc.Analytics, r.logger))
			registerSettingsRoutes(private, NewSettingsHandler(uc.Settings, r.logger))
			registerStorageRoutes(private, NewStorageHandler(uc.Images, r.logger))
		})
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.getProducts)
		pr.Post("/", h.createProduct)
		pr.Put("/{id}", h.updateProduct)
		pr.Delete("/{id}", h.deleteProduct)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Get("/", h.getOrders)
		or.Patch("/{id}", h.patchOrder)
	})
}

func registerCustomerRoutes(router chi.Router, h *CustomerHandler) {
	router.Route("/customers", func(cr chi.Router) {
		cr.Get("/", h.getCustomers)
		cr.Patch("/{id}/status", h.patchCustomerStatus)
	})
}

func registerRepairRoutes(router chi.Router, h *RepairHandler) {
	router.Route("/repairs", func(rr chi.Router) {
		rr.Get("/", h.getRepairs)
		rr.Post("/", h.createRepair)
		rr.Patch("/{id}", h.patchRepair)
	})
}

func registerInventoryRoutes(router chi.Router, h *InventoryHandler) {
	router.Route("/inventory", func(ir chi.Router) {
		ir.Get("/logs", h.getLogs)
		ir.Post("/{productID}/adjust", h.adjustStock)
	})
}

func registerPromotionRoutes(router chi.Router, h *PromotionHandler) {
	router.Route("/promotions", func(pr chi.Router) {
		pr.Get("/", h.getPromotions)
		pr.Post("/", h.createPromotion)
		pr.Delete("/{id}", h.deletePromotion)
		pr.Post("/{id}/toggle", h.togglePromotion)
	})
}

func registerFinanceRoutes(router chi.Router, h *FinanceHandler) {
	router.Route("/finance", func(fr chi.Router) {
		fr.Get("/transactions", h.getTransactions)
		fr.Get("/summary", h.getSummary)
	})
}

func registerAnalyticsRoutes(router chi.Router, h *AnalyticsHandler) {
	router.Route("/analytics", func(ar chi.Router) {
		ar.Get("/revenue", h.getRevenue)
		ar.Get("/categories", h.getCategorySales)
		ar.Get("/payments", h.getPaymentStats)
		ar.Get("/top-products", h.getTopProducts)
	})
}

func registerSettingsRoutes(router chi.Router, h *SettingsHandler) {
	router.Route("/settings", func(sr chi.Router) {
		sr.Put("/profile", h.updateProfile)
		sr.Put("/preferences", h.updatePreferences)
	})
}

func registerStorageRoutes(router chi.Router, h *StorageHandler) {
	router.Route("/storage", func(sr chi.Router) {
		sr.Post("/images", h.uploadImages)
	})
}
