package domain

import "errors"

// ErrValidation agrupa todas las violaciones de invariantes de entidades.
var ErrValidation = errors.New("validación de entidad")

// ValidationError describe la primera regla incumplida por una entidad.
// Error devuelve el mensaje tal cual, sin prefijos, para poder mostrarlo al usuario.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is permite errors.Is(err, ErrValidation) y la comparación entre reglas iguales.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Field == e.Field && t.Message == e.Message
}

// NewValidationError construye un error de validación para el campo indicado.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
