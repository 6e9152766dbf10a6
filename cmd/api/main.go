package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/bootstrap"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}
	defer store.Close()

	svc := bootstrap.NewServices(store, cfg, log, nil)

	if cfg.Seed.OnStart {
		if _, err := svc.Seed.SeedIfEmpty(ctx); err != nil {
			log.Error().Err(err).Msg("carga de datos de ejemplo")
		}
	}

	app := bootstrap.NewHTTPApp(cfg, svc, log)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
