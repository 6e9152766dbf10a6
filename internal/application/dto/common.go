package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse id asignado por el store al crear un registro.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// ResultResponse resultado booleano de update/delete.
type ResultResponse struct {
	Success bool `json:"success"`
}
