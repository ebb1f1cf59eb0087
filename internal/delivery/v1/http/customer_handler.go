package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type CustomerHandler struct {
	customerUsecase usecase.CustomerUC
	logger          logger.Logger
}

func NewCustomerHandler(customerUsecase usecase.CustomerUC, logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{customerUsecase: customerUsecase, logger: logger}
}

type customerStatusRequest struct {
	Status string `json:"status"`
}

func (c *CustomerHandler) getCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.customerUsecase.GetAll(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, customers)
}

func (c *CustomerHandler) patchCustomerStatus(w http.ResponseWriter, r *http.Request) {
	var req customerStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	updated, err := c.customerUsecase.UpdateStatus(r.Context(), chi.URLParam(r, "id"), domain.CustomerStatus(req.Status))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, updated)
}
