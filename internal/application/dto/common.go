package dto

// ErrorResponse cuerpo de error HTTP.
// Message conserva los textos observables de la API ("customer not found!", etc.).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
