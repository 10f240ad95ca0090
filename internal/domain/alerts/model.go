package alerts

import "time"

// Type define la categoría de alerta.
// @Enum estoque, vacina
type Type string

const (
	TypeStock   Type = "estoque"
	TypeVaccine Type = "vacina"
)

// Alert es una notificación generada por una regla. Resolved solo pasa de false a true.
type Alert struct {
	ID        int64
	Type      Type
	Message   string
	CreatedAt time.Time
	UserID    int64
	// Producto o vacuna que disparó la alerta.
	ItemID   *int64
	Resolved bool
}
