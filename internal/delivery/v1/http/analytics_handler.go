package http

import (
	"net/http"

	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUC
	logger           logger.Logger
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUC, logger logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase, logger: logger}
}

func (h *AnalyticsHandler) getRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.analyticsUsecase.GetRevenue(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, revenue)
}

func (h *AnalyticsHandler) getCategorySales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.analyticsUsecase.GetCategorySales(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, sales)
}

func (h *AnalyticsHandler) getPaymentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsUsecase.GetPaymentStats(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) getTopProducts(w http.ResponseWriter, r *http.Request) {
	top, err := h.analyticsUsecase.GetTopSellingProducts(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, top)
}
