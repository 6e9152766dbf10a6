// Comando seed: aplica el esquema y carga los datos de ejemplo si el store está vacío.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/bootstrap"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

func main() {
	os.Exit(run())
}

// run devuelve el código de salida; el store se libera en todos los caminos.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := bootstrap.OpenStore(ctx, cfg.DB, log)
	if err != nil {
		log.Error().Err(err).Msg("abrir store")
		return 1
	}
	defer store.Close()

	svc := bootstrap.NewServices(store, cfg, log, nil)
	seeded, err := svc.Seed.SeedIfEmpty(ctx)
	if err != nil {
		log.Error().Err(err).Msg("carga de datos de ejemplo")
		return 1
	}
	if !seeded {
		log.Info().Msg("el store ya tiene datos, no se cargó nada")
	}
	return 0
}
