package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type orderPatchRequest struct {
	Status                *string `json:"status"`
	TrackingNumber        *string `json:"trackingNumber"`
	EstimatedDeliveryDate *string `json:"estimatedDeliveryDate"`
}

func (o *OrderHandler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderUsecase.GetAll(r.Context())
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, orders)
}

func (o *OrderHandler) patchOrder(w http.ResponseWriter, r *http.Request) {
	var req orderPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	patch := &usecase.OrderPatch{
		TrackingNumber:        req.TrackingNumber,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
	}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		patch.Status = &status
	}

	updated, err := o.orderUsecase.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, updated)
}
