// Aplica as migrações do schema (goose) no banco configurado via env.
// Substitui os scripts manuais de bootstrap: criar as tabelas é operação
// única de implantação, não parte do runtime da API.
package main

import (
	"context"
	"time"

	"github.com/estoquedev/controle-estoque-api/internal/infrastructure/postgres"
	"github.com/estoquedev/controle-estoque-api/pkg/config"
	"github.com/estoquedev/controle-estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Info().Str("db", cfg.DB.DBName).Msg("aplicando migrações")
	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migração falhou")
	}
	log.Info().Msg("migrações aplicadas")
}
