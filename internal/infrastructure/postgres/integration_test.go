//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/bootstrap"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// startPostgres levanta un contenedor efímero y devuelve su DSN.
func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("inventario_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminar contenedor: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func testConfig(dsn string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Name: "inventario-ledger"},
		DB: config.DBConfig{
			Driver:         config.DriverPostgres,
			DatabaseURL:    dsn,
			MaxConns:       4,
			MigrateOnStart: true,
		},
		Report: config.ReportConfig{HistoryDays: 30, TransactionLimit: 100, TopN: 5},
	}
}

func TestPostgres_MigracionesIdaYVuelta(t *testing.T) {
	dsn := startPostgres(t)
	log := logger.Nop()

	m, err := postgres.NewMigrator(dsn, log)
	require.NoError(t, err)
	require.NoError(t, m.Up())
	require.NoError(t, m.Up(), "sin cambios pendientes no es error")
	require.NoError(t, m.Down())
	require.NoError(t, m.Close())
}

func TestPostgres_LedgerConDatosDeEjemplo(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()
	cfg := testConfig(dsn)
	log := logger.Nop()

	store, err := bootstrap.OpenStore(ctx, cfg.DB, log)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	svc := bootstrap.NewServices(store, cfg, log, nil)

	seeded, err := svc.Seed.SeedIfEmpty(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = svc.Seed.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, seeded, "un store con datos no se vuelve a sembrar")

	found, err := svc.Products.Search(ctx, "laptop")
	require.NoError(t, err)
	require.Len(t, found, 1)
	laptop := found[0]
	assert.Equal(t, "Electronics", laptop.CategoryName)

	stock, err := svc.Products.GetCurrentStock(ctx, laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), stock)

	items, err := svc.Ledger.CurrentInventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)
	for _, it := range items {
		if it.ProductID == laptop.ID {
			assert.True(t, decimal.RequireFromString("7999.92").Equal(it.Value), "valor %s", it.Value)
		}
	}

	value, err := svc.Ledger.InventoryValue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, value.TotalProducts)
	assert.True(t, decimal.RequireFromString("11048.92").Equal(value.TotalValue), "total %s", value.TotalValue)

	history, err := svc.Ledger.TransactionHistory(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, history, 6)
}

func TestPostgres_RestriccionesDelStore(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()
	cfg := testConfig(dsn)
	log := logger.Nop()

	store, err := bootstrap.OpenStore(ctx, cfg.DB, log)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	svc := bootstrap.NewServices(store, cfg, log, nil)

	catID, err := svc.Categories.Create(ctx, dto.CategoryRequest{Name: "Tools"})
	require.NoError(t, err)

	_, err = svc.Categories.Create(ctx, dto.CategoryRequest{Name: "Tools"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, domain.KindConstraint, domain.KindOf(err))

	_, err = svc.Products.Create(ctx, dto.ProductRequest{
		Name:       "Hammer",
		CategoryID: &catID,
		Price:      decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)

	ok, err := svc.Categories.Delete(ctx, catID)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrHasDependents)

	// FK directa en el repositorio: la categoría referenciada no existe.
	pool, err := postgres.NewPool(ctx, cfg.DB)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	missing := int64(9999)
	_, err = postgres.NewProductRepository(pool).Create(ctx, &entity.Product{
		Name:       "Saw",
		CategoryID: &missing,
		Price:      decimal.RequireFromString("20"),
	})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	_, err = postgres.NewProductRepository(pool).Create(ctx, &entity.Product{
		Name:  "Broken",
		Price: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrCheckViolation)
}

func TestPostgres_CantidadesYPreciosAmplios(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()
	cfg := testConfig(dsn)
	log := logger.Nop()

	store, err := bootstrap.OpenStore(ctx, cfg.DB, log)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	svc := bootstrap.NewServices(store, cfg, log, nil)

	// NUMERIC sin escala fija conserva el valor exacto.
	pid, err := svc.Products.Create(ctx, dto.ProductRequest{Name: "Bolt", Price: decimal.RequireFromString("999.999")})
	require.NoError(t, err)
	p, err := svc.Products.GetByID(ctx, pid)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("999.999").Equal(p.Price), "precio %s", p.Price)

	_, err = svc.Products.Create(ctx, dto.ProductRequest{Name: "Crane", Price: decimal.RequireFromString("10000000000")})
	require.NoError(t, err)

	// Cantidades fuera del rango de INTEGER.
	for i := 0; i < 2; i++ {
		_, err = svc.Transactions.Create(ctx, dto.TransactionRequest{ProductID: pid, Type: "IN", Quantity: 3_000_000_000})
		require.NoError(t, err)
	}
	stock, err := svc.Products.GetCurrentStock(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, int64(6_000_000_000), stock)

	items, err := svc.Ledger.CurrentInventory(ctx)
	require.NoError(t, err)
	for _, it := range items {
		if it.ProductID == pid {
			assert.Equal(t, int64(6_000_000_000), it.CurrentStock)
		}
	}
}
