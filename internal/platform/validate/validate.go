// Package validate envuelve go-playground/validator y traduce los errores
// a mensajes legibles para el cliente.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		// Los mensajes usan el nombre JSON del campo.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return v
}

// Struct valida s y devuelve un error con mensaje listo para la respuesta.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("campo %q é obrigatório", field)
	case "email":
		return fmt.Sprintf("campo %q deve ser um email válido", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("campo %q deve ter no mínimo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("campo %q deve ser maior ou igual a %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("campo %q deve ser maior ou igual a %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("campo %q deve ser maior que %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("campo %q deve ser um de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("campo %q inválido", field)
	}
}
