// Package validate es un wrapper fino sobre go-playground/validator para
// validar los DTOs de request con sus tags `validate`.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct valida un struct usando sus tags de validación. Devuelve un error
// con mensajes legibles por campo, apto para responder al cliente.
func Struct(i interface{}) error {
	if err := v.Struct(i); err != nil {
		return formatError(err)
	}
	return nil
}

// formatError convierte los errores del validador en mensajes legibles.
func formatError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, fmt.Sprintf("campo '%s' no cumple '%s'", e.Field(), e.Tag()))
	}
	return errors.New(strings.Join(messages, "; "))
}
