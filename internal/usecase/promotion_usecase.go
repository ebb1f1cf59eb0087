package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/koliko-tech/admin-backend/internal/domain"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

const promoDateLayout = "2006-01-02"

// PromotionUseCase реализует операции с промокодами.
// Статус промокода нигде не хранится — он вычисляется при каждом чтении.
type PromotionUseCase struct {
	promoRepo PromotionRepository
	logger    logger.Logger
}

func NewPromotionUC(promoRepo PromotionRepository, logger logger.Logger) *PromotionUseCase {
	return &PromotionUseCase{promoRepo: promoRepo, logger: logger}
}

func (p *PromotionUseCase) GetAll(ctx context.Context) ([]PromotionInfo, error) {
	const op = "PromotionUseCase.GetAll"

	promos, err := p.promoRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	now := time.Now()
	result := make([]PromotionInfo, 0, len(promos))
	for _, promo := range promos {
		result = append(result, NewPromotionInfo(promo, now))
	}

	return result, nil
}

func (p *PromotionUseCase) Create(ctx context.Context, req *CreatePromotionReq) (*PromotionInfo, error) {
	const op = "PromotionUseCase.Create"

	if err := validatePromotion(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	promo := &domain.Promotion{
		ID:             domain.NewPrefixedID(domain.PromotionIDPrefix),
		Code:           strings.ToUpper(strings.TrimSpace(req.Code)),
		Type:           req.Type,
		Value:          req.Value,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		UsageCount:     0,
		MinOrderAmount: req.MinOrderAmount,
	}

	created, err := p.promoRepo.Create(ctx, promo)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewPromotionInfo(*created, time.Now())
	return &info, nil
}

func (p *PromotionUseCase) Delete(ctx context.Context, id string) error {
	const op = "PromotionUseCase.Delete"

	if err := p.promoRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Toggle переключает флаг отключения промокода. Операция самообратна:
// два переключения подряд возвращают исходный статус.
func (p *PromotionUseCase) Toggle(ctx context.Context, id string) (*PromotionInfo, error) {
	const op = "PromotionUseCase.Toggle"

	promo, err := p.promoRepo.Toggle(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewPromotionInfo(*promo, time.Now())
	return &info, nil
}

func validatePromotion(req *CreatePromotionReq) error {
	if strings.TrimSpace(req.Code) == "" {
		return e.ErrCodeRequired
	}

	if !domain.ValidPromotionType(req.Type) {
		return e.ErrInvalidStatus
	}

	if req.Value <= 0 {
		return e.ErrStatusBadRequest
	}

	start, err := time.Parse(promoDateLayout, req.StartDate)
	if err != nil {
		return e.ErrInvalidDateRange
	}
	end, err := time.Parse(promoDateLayout, req.EndDate)
	if err != nil {
		return e.ErrInvalidDateRange
	}
	if end.Before(start) {
		return e.ErrInvalidDateRange
	}

	return nil
}
