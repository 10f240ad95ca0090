// Package patch distingue en un body JSON un campo ausente de uno enviado como null.
package patch

import "encoding/json"

// Field[T] queda Present=false si la key no vino en el JSON.
// Con "key": null queda Present=true y Value=nil (limpiar).
type Field[T any] struct {
	Present bool
	Value   *T
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Present = true
	if string(b) == "null" {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// Set construye un Field presente con valor.
func Set[T any](v T) Field[T] { return Field[T]{Present: true, Value: &v} }

// Null construye un Field presente en null.
func Null[T any]() Field[T] { return Field[T]{Present: true} }

// Apply devuelve el valor resultante de aplicar el patch sobre current.
func (f Field[T]) Apply(current *T) *T {
	if !f.Present {
		return current
	}
	return f.Value
}
