// Aplica las migraciones del esquema y termina. Pensado para el arranque
// del contenedor o para correr a mano antes de levantar la API.
package main

import (
	"context"
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/infrastructure/migrate"
	"github.com/jhoicas/ElectroPos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ElectroPos-api/pkg/config"
	"github.com/jhoicas/ElectroPos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("migraciones aplicadas")
}
