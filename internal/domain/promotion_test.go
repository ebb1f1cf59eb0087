package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromotionStatusAt(t *testing.T) {
	now := time.Date(2023, 10, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		promo Promotion
		want  PromotionStatus
	}{
		{
			name:  "active inside range",
			promo: Promotion{StartDate: "2023-10-01", EndDate: "2023-10-31"},
			want:  PromotionActive,
		},
		{
			name:  "scheduled before start",
			promo: Promotion{StartDate: "2023-11-01", EndDate: "2023-11-30"},
			want:  PromotionScheduled,
		},
		{
			name:  "expired after end",
			promo: Promotion{StartDate: "2023-09-01", EndDate: "2023-09-30"},
			want:  PromotionExpired,
		},
		{
			name:  "disabled wins over dates",
			promo: Promotion{StartDate: "2023-10-01", EndDate: "2023-10-31", Disabled: true},
			want:  PromotionExpired,
		},
		{
			// промокод действует весь последний день включительно
			name:  "still active on end date",
			promo: Promotion{StartDate: "2023-10-01", EndDate: "2023-10-15"},
			want:  PromotionActive,
		},
		{
			name:  "unparseable dates treated as active",
			promo: Promotion{StartDate: "soon", EndDate: "later"},
			want:  PromotionActive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.promo.StatusAt(now))
		})
	}
}
