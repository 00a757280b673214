package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"avatar upload failed"`
}

// ValidationErrorResponse carries the full field-path → message map of a
// failed validation run.
// swagger:model api.ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string            `json:"message" example:"validation failed"`
	Fields  map[string]string `json:"fields"`
}
