package response

import "projeto_solar/internal/domain/wizard"

// Envelope is the success wire shape shared by every endpoint.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// ValidationErrors is the failure shape for field-level errors.
type ValidationErrors struct {
	Success bool               `json:"success"`
	Errors  wizard.FieldErrors `json:"errors"`
}

func FromFieldErrors(errs wizard.FieldErrors) ValidationErrors {
	return ValidationErrors{Success: false, Errors: errs}
}
