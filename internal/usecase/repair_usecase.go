package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type RepairUseCase struct {
	repairRepo RepairRepository
	logger     logger.Logger
}

func NewRepairUC(repairRepo RepairRepository, logger logger.Logger) *RepairUseCase {
	return &RepairUseCase{repairRepo: repairRepo, logger: logger}
}

func (r *RepairUseCase) GetAll(ctx context.Context) ([]domain.RepairRequest, error) {
	const op = "RepairUseCase.GetAll"

	repairs, err := r.repairRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return repairs, nil
}

func (r *RepairUseCase) Create(ctx context.Context, req *CreateRepairReq) (*domain.RepairRequest, error) {
	const op = "RepairUseCase.Create"

	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.ProductName) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	status := req.Status
	if status == "" {
		status = domain.RepairPending
	}
	if !domain.ValidRepairStatus(status) {
		return nil, e.Wrap(op, e.ErrInvalidStatus)
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	repair := &domain.RepairRequest{
		ID:                      domain.NewPrefixedID(domain.RepairIDPrefix),
		CustomerName:            req.CustomerName,
		Email:                   req.Email,
		Phone:                   req.Phone,
		ProductName:             req.ProductName,
		IssueDescription:        req.IssueDescription,
		Status:                  status,
		Date:                    date,
		EstimatedCost:           req.EstimatedCost,
		ImageURL:                req.ImageURL,
		EstimatedCompletionDate: req.EstimatedCompletionDate,
	}

	created, err := r.repairRepo.Create(ctx, repair)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

func (r *RepairUseCase) Update(ctx context.Context, id string, patch *RepairPatch) (*domain.RepairRequest, error) {
	const op = "RepairUseCase.Update"

	if patch.Status != nil && !domain.ValidRepairStatus(*patch.Status) {
		return nil, e.Wrap(op, e.ErrInvalidStatus)
	}

	repair, err := r.repairRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return repair, nil
}
