package http

import (
	"net/http"

	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.authUsecase.Login(r.Context(), usecase.NewLoginReq(req.Email, req.Password))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, loginResponse{
		Token: res.Token,
		Email: res.Email,
		Role:  res.Role,
	})
}

func (a *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := a.authUsecase.Logout(r.Context(), bearerToken(r)); err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"ok": true})
}
