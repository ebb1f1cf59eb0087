package http

import (
	"net/http"

	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type SettingsHandler struct {
	settingsUsecase usecase.SettingsUC
	logger          logger.Logger
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUC, logger logger.Logger) *SettingsHandler {
	return &SettingsHandler{settingsUsecase: settingsUsecase, logger: logger}
}

type profileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type preferencesRequest struct {
	EmailNotifications *bool `json:"emailNotifications"`
	LowStockAlerts     *bool `json:"lowStockAlerts"`
	OrderUpdates       *bool `json:"orderUpdates"`
}

func (h *SettingsHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	profile, err := h.settingsUsecase.UpdateProfile(r.Context(), &usecase.ProfileUpdateReq{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, profile)
}

func (h *SettingsHandler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	prefs, err := h.settingsUsecase.UpdatePreferences(r.Context(), &usecase.PreferencesUpdateReq{
		EmailNotifications: req.EmailNotifications,
		LowStockAlerts:     req.LowStockAlerts,
		OrderUpdates:       req.OrderUpdates,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, prefs)
}
