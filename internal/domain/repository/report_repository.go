package repository

import (
	"context"
	"time"
)

// SupplierActivity resultado crudo de la actividad por proveedor.
type SupplierActivity struct {
	SupplierID       int64
	Name             string
	TransactionCount int64
	TotalReceived    int64 // Σ quantity IN
	TotalShipped     int64 // Σ quantity OUT
	ProductsHandled  int64 // productos distintos
}

// PeriodActivity totales del ledger en un período.
type PeriodActivity struct {
	TotalTransactions int64
	TotalIn           int64
	TotalOut          int64
	ProductsAffected  int64
}

// ProductActivity actividad de un producto en un período.
type ProductActivity struct {
	ProductID        int64
	Name             string
	TransactionCount int64
	Received         int64
	Shipped          int64
}

// ReportRepository consultas de lectura para los reportes agregados.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// SupplierActivity devuelve una fila por proveedor, incluidos los que no tienen transacciones,
	// ordenada por nombre.
	SupplierActivity(ctx context.Context) ([]SupplierActivity, error)

	// PeriodActivity agrega las transacciones con fecha >= since. Ceros si no hay filas.
	PeriodActivity(ctx context.Context, since time.Time) (PeriodActivity, error)

	// TopProductsByActivity devuelve los `limit` productos con más transacciones desde since.
	TopProductsByActivity(ctx context.Context, since time.Time, limit int) ([]ProductActivity, error)
}
