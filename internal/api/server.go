// Package api monta o servidor HTTP com suas rotas e middlewares
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/consigtech/proposal-tracker-api/internal/api/handler"
	"github.com/consigtech/proposal-tracker-api/internal/api/handler/router"
	"github.com/consigtech/proposal-tracker-api/internal/config"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/authenticating"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/dashboarding"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/goaling"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/proposing"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/ranking"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/reporting"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
	"github.com/consigtech/proposal-tracker-api/pkg/middleware"
	"github.com/justinas/alice"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	proposer proposing.Proposer,
	reporter reporting.Reporter,
	dashboarder dashboarding.Dashboarder,
	ranker ranking.Ranker,
	goalManager goaling.GoalManager,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Proposals(proposer)...),
		router.WithRoutes(handler.Reports(reporter)...),
		router.WithRoutes(handler.Dashboard(dashboarder)...),
		router.WithRoutes(handler.Ranking(ranker)...),
		router.WithRoutes(handler.Goals(goalManager)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
