package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

// SettingsUseCase хранит профиль магазина и настройки уведомлений в памяти.
type SettingsUseCase struct {
	logger logger.Logger

	mu      sync.Mutex
	profile Profile
	prefs   Preferences
}

func NewSettingsUC(adminEmail string, logger logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		logger: logger,
		profile: Profile{
			Name:  "Koliko Store",
			Email: adminEmail,
		},
		prefs: Preferences{
			EmailNotifications: true,
			LowStockAlerts:     true,
			OrderUpdates:       true,
		},
	}
}

func (s *SettingsUseCase) UpdateProfile(ctx context.Context, req *ProfileUpdateReq) (*Profile, error) {
	const op = "SettingsUseCase.UpdateProfile"

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	s.mu.Lock()
	s.profile = Profile{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	updated := s.profile
	s.mu.Unlock()

	return &updated, nil
}

func (s *SettingsUseCase) UpdatePreferences(ctx context.Context, req *PreferencesUpdateReq) (*Preferences, error) {
	s.mu.Lock()
	if req.EmailNotifications != nil {
		s.prefs.EmailNotifications = *req.EmailNotifications
	}
	if req.LowStockAlerts != nil {
		s.prefs.LowStockAlerts = *req.LowStockAlerts
	}
	if req.OrderUpdates != nil {
		s.prefs.OrderUpdates = *req.OrderUpdates
	}
	updated := s.prefs
	s.mu.Unlock()

	return &updated, nil
}
