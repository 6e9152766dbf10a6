package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrInvalidTransactionType = errors.New("tipo de transacción inválido: debe ser IN, OUT o ADJUSTMENT")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrReferenceNotFound      = errors.New("la referencia no existe")
	ErrHasDependents          = errors.New("existen registros dependientes")
	ErrCheckViolation         = errors.New("violación de restricción de dominio")
)

// ErrorKind clasifica los fallos del repositorio de registros.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation" // rechazado antes de tocar el store
	KindConstraint ErrorKind = "constraint" // único, FK, check o dependientes
	KindStorage    ErrorKind = "storage"    // conectividad u otro fallo del store
)

// Error es el resultado etiquetado (kind + mensaje + causa) que devuelven los casos de uso.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidationError etiqueta un fallo de validación.
func NewValidationError(op string, err error) *Error {
	return &Error{Kind: KindValidation, Op: op, Err: err}
}

// NewConstraintError etiqueta una violación de restricción.
func NewConstraintError(op string, err error) *Error {
	return &Error{Kind: KindConstraint, Op: op, Err: err}
}

// NewStorageError etiqueta un fallo del store conservando la causa original.
func NewStorageError(op string, err error) *Error {
	return &Error{Kind: KindStorage, Op: op, Err: err}
}

// KindOf devuelve el kind de err, o "" si no es un *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Classify envuelve err con el kind que le corresponde según el sentinel que contenga.
// Los errores ya etiquetados se devuelven sin cambios.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidTransactionType):
		return NewValidationError(op, err)
	case errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrReferenceNotFound),
		errors.Is(err, ErrHasDependents),
		errors.Is(err, ErrCheckViolation):
		return NewConstraintError(op, err)
	default:
		return NewStorageError(op, err)
	}
}
