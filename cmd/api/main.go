package main

import (
	"context"

	"github.com/consigtech/proposal-tracker-api/infrastructure/database"
	"github.com/consigtech/proposal-tracker-api/infrastructure/database/postgres"
	"github.com/consigtech/proposal-tracker-api/infrastructure/database/sqlite"
	"github.com/consigtech/proposal-tracker-api/infrastructure/repository"
	"github.com/consigtech/proposal-tracker-api/internal/api"
	"github.com/consigtech/proposal-tracker-api/internal/config"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/authenticating"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/dashboarding"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/goaling"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/proposing"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/ranking"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/reporting"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := connect(ctx, cfg)
	defer conn.Close()

	proposalRepo := repository.NewProposalRepository(conn)
	userRepo := repository.NewUserRepository(conn)
	goalRepo := repository.NewGoalRepository(conn)

	authenticator := authenticating.NewService(userRepo, cfg)
	proposer := proposing.NewService(proposalRepo)
	reporter := reporting.NewService(proposalRepo, goalRepo)
	dashboarder := dashboarding.NewService(proposalRepo, userRepo, goalRepo)
	ranker := ranking.NewService(proposalRepo, userRepo, goalRepo)
	goalManager := goaling.NewService(goalRepo)

	server, err := api.New(
		cfg,
		authenticator,
		proposer,
		reporter,
		dashboarder,
		ranker,
		goalManager,
	)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// connect escolhe o backend uma única vez: DATABASE_URL preenchida liga
// ao PostgreSQL; vazia abre o arquivo SQLite local.
func connect(ctx context.Context, cfg *config.Config) database.Conn {
	seed := adminSeed(cfg)

	if cfg.Database.UsePostgres() {
		conn, err := postgres.NewConnection(ctx, cfg.Database, seed)
		if err != nil {
			log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
		}

		log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return conn
	}

	conn, err := sqlite.NewConnection(ctx, cfg.Database, seed)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao abrir o banco SQLite")
	}

	log.L.WithField("path", cfg.Database.SQLitePath).Info("Banco SQLite aberto com sucesso")
	return conn
}

func adminSeed(cfg *config.Config) database.Seed {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Bootstrap.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao preparar a credencial inicial")
	}

	return database.Seed{
		AdminName:         cfg.Bootstrap.AdminName,
		AdminPasswordHash: string(hash),
	}
}
