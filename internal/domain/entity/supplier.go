package entity

// Supplier representa un proveedor. El nombre no es único.
type Supplier struct {
	ID          int64
	Name        string
	ContactInfo string
	Address     string
}
