// Package httpx reúne los helpers de request/response que comparten los handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// ErrorResponse es el cuerpo de todas las respuestas de error.
type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Message: msg})
}

// DecodeJSON decodifica el body en v. Un body vacío es error.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("body vazio")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("body vazio")
		}
		return errors.New("json inválido")
	}
	return nil
}

// PathID lee un id entero positivo del path.
func PathID(r *http.Request, param string) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, param))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
