package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jhoicas/inventario-ledger/internal/domain"
)

// Códigos SQLSTATE de violación de constraints.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == codeUniqueViolation
}

// mapWriteError traduce errores de INSERT/UPDATE a errores de dominio, conservando la causa.
// Una violación de FK en escritura significa que la fila referenciada no existe.
func mapWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrDuplicate, err)
	case pgErrorCode(err) == codeForeignKeyViolation:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrReferenceNotFound, err)
	case pgErrorCode(err) == codeCheckViolation:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrCheckViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// mapDeleteError traduce errores de DELETE. Con ON DELETE RESTRICT una violación de FK
// significa que aún existen filas dependientes.
func mapDeleteError(op string, err error) error {
	if pgErrorCode(err) == codeForeignKeyViolation {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrHasDependents, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// escapeLike escapa los comodines de LIKE para buscar term como subcadena literal.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func int8OrNull(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func int8Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
