package entity

// Category agrupa productos. Name es único en todo el sistema.
type Category struct {
	ID          int64
	Name        string
	Description string
}
