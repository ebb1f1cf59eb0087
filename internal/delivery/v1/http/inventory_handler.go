package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUC
	logger           logger.Logger
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUC, logger logger.Logger) *InventoryHandler {
	return &InventoryHandler{inventoryUsecase: inventoryUsecase, logger: logger}
}

type adjustStockRequest struct {
	Adjustment int64  `json:"adjustment"`
	Reason     string `json:"reason"`
	User       string `json:"user"`
}

func (h *InventoryHandler) getLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.inventoryUsecase.GetLogs(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, logs)
}

func (h *InventoryHandler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	log, err := h.inventoryUsecase.AdjustStock(r.Context(), usecase.NewAdjustStockReq(
		chi.URLParam(r, "productID"),
		req.Adjustment,
		domain.AdjustmentReason(req.Reason),
		req.User,
	))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, log)
}
