package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type RepairHandler struct {
	repairUsecase usecase.RepairUC
	logger        logger.Logger
}

func NewRepairHandler(repairUsecase usecase.RepairUC, logger logger.Logger) *RepairHandler {
	return &RepairHandler{repairUsecase: repairUsecase, logger: logger}
}

type createRepairRequest struct {
	CustomerName            string `json:"customerName"`
	Email                   string `json:"email"`
	Phone                   string `json:"phone"`
	ProductName             string `json:"productName"`
	IssueDescription        string `json:"issueDescription"`
	Status                  string `json:"status"`
	Date                    string `json:"date"`
	EstimatedCostCents      int64  `json:"estimatedCostCents"`
	ImageURL                string `json:"imageUrl"`
	EstimatedCompletionDate string `json:"estimatedCompletionDate"`
}

type repairPatchRequest struct {
	Status                  *string `json:"status"`
	EstimatedCostCents      *int64  `json:"estimatedCostCents"`
	EstimatedCompletionDate *string `json:"estimatedCompletionDate"`
	IssueDescription        *string `json:"issueDescription"`
}

func (h *RepairHandler) getRepairs(w http.ResponseWriter, r *http.Request) {
	repairs, err := h.repairUsecase.GetAll(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, repairs)
}

func (h *RepairHandler) createRepair(w http.ResponseWriter, r *http.Request) {
	var req createRepairRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.repairUsecase.Create(r.Context(), &usecase.CreateRepairReq{
		CustomerName:            req.CustomerName,
		Email:                   req.Email,
		Phone:                   req.Phone,
		ProductName:             req.ProductName,
		IssueDescription:        req.IssueDescription,
		Status:                  domain.RepairStatus(req.Status),
		Date:                    req.Date,
		EstimatedCost:           req.EstimatedCostCents,
		ImageURL:                req.ImageURL,
		EstimatedCompletionDate: req.EstimatedCompletionDate,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, created)
}

func (h *RepairHandler) patchRepair(w http.ResponseWriter, r *http.Request) {
	var req repairPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	patch := &usecase.RepairPatch{
		EstimatedCost:           req.EstimatedCostCents,
		EstimatedCompletionDate: req.EstimatedCompletionDate,
		IssueDescription:        req.IssueDescription,
	}
	if req.Status != nil {
		status := domain.RepairStatus(*req.Status)
		patch.Status = &status
	}

	updated, err := h.repairUsecase.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, updated)
}
