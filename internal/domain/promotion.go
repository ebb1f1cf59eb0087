package domain

import "time"

// PromotionType — тип скидки: процентная или фиксированная сумма.
type PromotionType string

const (
	PromotionPercentage PromotionType = "percentage"
	PromotionFixed      PromotionType = "fixed"
)

// PromotionStatus — вычисляемый статус промокода.
type PromotionStatus string

const (
	PromotionActive    PromotionStatus = "active"
	PromotionExpired   PromotionStatus = "expired"
	PromotionScheduled PromotionStatus = "scheduled"
)

const promoDateLayout = "2006-01-02"

// Promotion описывает промокод.
// Статус не хранится: он выводится из дат действия и флага Disabled,
// чтобы хранимое значение не расходилось со своими источниками.
type Promotion struct {
	ID             string        `json:"id"`
	Code           string        `json:"code"`
	Type           PromotionType `json:"type"`
	Value          int64         `json:"value"` // проценты либо копейки, в зависимости от Type
	StartDate      string        `json:"startDate"`
	EndDate        string        `json:"endDate"`
	UsageCount     int64         `json:"usageCount"`
	Disabled       bool          `json:"disabled"`
	MinOrderAmount int64         `json:"minOrderAmountCents,omitempty"`
}

func (p Promotion) RecordID() string { return p.ID }

// StatusAt вычисляет статус промокода на момент now.
// Отключённый или завершившийся промокод — expired, ещё не начавшийся — scheduled.
func (p Promotion) StatusAt(now time.Time) PromotionStatus {
	if p.Disabled {
		return PromotionExpired
	}

	if start, err := time.Parse(promoDateLayout, p.StartDate); err == nil && now.Before(start) {
		return PromotionScheduled
	}

	if end, err := time.Parse(promoDateLayout, p.EndDate); err == nil && now.After(end.AddDate(0, 0, 1)) {
		return PromotionExpired
	}

	return PromotionActive
}

// ValidPromotionType проверяет, что строка является допустимым типом промокода.
func ValidPromotionType(t PromotionType) bool {
	return t == PromotionPercentage || t == PromotionFixed
}
