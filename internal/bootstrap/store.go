// Package bootstrap arma el store y los casos de uso para los binarios de cmd/.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// Store handle del almacenamiento: repositorios, lecturas del ledger y runner transaccional.
// Close libera la conexión; es seguro llamarlo más de una vez.
type Store struct {
	Repos   repository.Repositories
	Ledger  repository.LedgerRepository
	Reports repository.ReportRepository
	Tx      repository.TxRunner

	close func()
}

// Close libera los recursos del store.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
		s.close = nil
	}
}

// PostgresStore envuelve un pool ya abierto. Close cierra el pool.
func PostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Repos: repository.Repositories{
			Categories:   postgres.NewCategoryRepository(pool),
			Suppliers:    postgres.NewSupplierRepository(pool),
			Products:     postgres.NewProductRepository(pool),
			Transactions: postgres.NewTransactionRepository(pool),
		},
		Ledger:  postgres.NewLedgerRepository(pool),
		Reports: postgres.NewReportRepository(pool),
		Tx:      postgres.NewTxRunner(pool),
		close:   pool.Close,
	}
}

// MemoryStore envuelve un store en memoria.
func MemoryStore(s *memory.Store) *Store {
	return &Store{
		Repos:   s.Repositories(),
		Ledger:  s.Ledger(),
		Reports: s.Reports(),
		Tx:      memory.NewTxRunner(s),
	}
}

// OpenStore abre el store indicado por cfg.Driver. Con postgres aplica las migraciones
// embebidas si MigrateOnStart está activo.
func OpenStore(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn().Msg("usando store en memoria: los datos no se persisten")
		return MemoryStore(memory.NewStore()), nil
	}

	if cfg.MigrateOnStart {
		if err := migrate(cfg.ConnectionString(), log); err != nil {
			return nil, err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return PostgresStore(pool), nil
}

func migrate(dsn string, log *logger.Logger) error {
	m, err := postgres.NewMigrator(dsn, log.Named("migrate"))
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
	}()
	return m.Up()
}
