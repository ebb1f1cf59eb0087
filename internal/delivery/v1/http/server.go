package http

import (
	"context"
	"net/http"
	"time"

	"github.com/koliko-tech/admin-backend/internal/cfg"
)

// Server оборачивает http.Server с таймаутами из конфигурации.
type Server struct {
	httpServer *http.Server
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 3 * time.Second,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
	}
}

// Run блокируется до остановки сервера.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Stop завершает сервер, дожидаясь активных запросов в пределах ctx.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
