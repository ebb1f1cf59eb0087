package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type PromotionHandler struct {
	promotionUsecase usecase.PromotionUC
	logger           logger.Logger
}

func NewPromotionHandler(promotionUsecase usecase.PromotionUC, logger logger.Logger) *PromotionHandler {
	return &PromotionHandler{promotionUsecase: promotionUsecase, logger: logger}
}

type createPromotionRequest struct {
	Code                string `json:"code"`
	Type                string `json:"type"`
	Value               int64  `json:"value"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	MinOrderAmountCents int64  `json:"minOrderAmountCents"`
}

func (h *PromotionHandler) getPromotions(w http.ResponseWriter, r *http.Request) {
	promos, err := h.promotionUsecase.GetAll(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, promos)
}

func (h *PromotionHandler) createPromotion(w http.ResponseWriter, r *http.Request) {
	var req createPromotionRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.promotionUsecase.Create(r.Context(), &usecase.CreatePromotionReq{
		Code:           req.Code,
		Type:           domain.PromotionType(req.Type),
		Value:          req.Value,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		MinOrderAmount: req.MinOrderAmountCents,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, created)
}

func (h *PromotionHandler) deletePromotion(w http.ResponseWriter, r *http.Request) {
	if err := h.promotionUsecase.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"ok": true})
}

func (h *PromotionHandler) togglePromotion(w http.ResponseWriter, r *http.Request) {
	toggled, err := h.promotionUsecase.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toggled)
}
