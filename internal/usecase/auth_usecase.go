package usecase

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/koliko-tech/admin-backend/internal/cfg"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

// AuthUseCase проверяет единственную административную учётную запись и
// держит выданные сессии в памяти. Токены не переживают перезапуск процесса.
type AuthUseCase struct {
	cfg    *cfg.AuthCfg
	logger logger.Logger

	mu       sync.Mutex
	sessions map[string]time.Time // token -> срок действия
}

func NewAuthUC(cfg *cfg.AuthCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[string]time.Time),
	}
}

// Login сверяет учётные данные и выдаёт токен сессии.
// Сравнение за постоянное время, чтобы не раскрывать длину пароля.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(a.cfg.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.cfg.AdminPassword)) == 1
	if !emailOK || !passOK {
		a.logger.Warnf("%s: rejected login for %q", op, req.Email)
		return nil, e.Wrap(op, e.ErrAuthFailure)
	}

	token := uuid.NewString()

	a.mu.Lock()
	a.sessions[token] = time.Now().Add(a.cfg.SessionTTL)
	a.mu.Unlock()

	return NewLoginRes(token, req.Email, "admin"), nil
}

// Logout завершает сессию. Неизвестный токен не считается ошибкой.
func (a *AuthUseCase) Logout(ctx context.Context, token string) error {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()

	return nil
}

// Validate проверяет токен и попутно удаляет его, если срок истёк.
func (a *AuthUseCase) Validate(token string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	deadline, ok := a.sessions[token]
	if !ok {
		return false
	}

	if time.Now().After(deadline) {
		delete(a.sessions, token)
		return false
	}

	return true
}
