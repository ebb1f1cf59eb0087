package http

import (
	"net/http"

	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type FinanceHandler struct {
	financeUsecase usecase.FinanceUC
	logger         logger.Logger
}

func NewFinanceHandler(financeUsecase usecase.FinanceUC, logger logger.Logger) *FinanceHandler {
	return &FinanceHandler{financeUsecase: financeUsecase, logger: logger}
}

func (h *FinanceHandler) getTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.financeUsecase.GetTransactions(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, transactions)
}

func (h *FinanceHandler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.financeUsecase.GetSummary(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, summary)
}
