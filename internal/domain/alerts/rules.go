package alerts

import (
	"fmt"
	"time"
)

// VaccineWindowDays: vacunas que vencen en este plazo (o ya vencidas) generan alerta.
const VaccineWindowDays = 30

const day = 24 * time.Hour

// Draft es una alerta decidida por las reglas, todavía sin persistir.
type Draft struct {
	Type    Type
	Message string
	UserID  int64
	ItemID  int64
}

// StockLevel es la foto de un producto que evalúan las reglas de estoque.
type StockLevel struct {
	ProductID   int64
	UserID      int64
	Name        string
	Quantity    int
	MinQuantity int
	// nil o 0 => sin tope.
	MaxQuantity *int
}

// VaccineExpiry es lo que necesita la regla de vencimiento.
type VaccineExpiry struct {
	VaccineID      int64
	VaccineName    string
	AnimalName     string
	TutorID        int64
	ExpirationDate time.Time
}

func IsLowStock(quantity, minQuantity int) bool {
	return quantity < minQuantity
}

// IsHighStock: un máximo en 0 cuenta como no configurado.
func IsHighStock(quantity int, maxQuantity *int) bool {
	return maxQuantity != nil && *maxQuantity != 0 && quantity > *maxQuantity
}

// EvaluateStock devuelve 0, 1 o 2 alertas para el producto.
func EvaluateStock(s StockLevel) []Draft {
	var out []Draft
	if IsLowStock(s.Quantity, s.MinQuantity) {
		out = append(out, Draft{
			Type:    TypeStock,
			Message: fmt.Sprintf("Produto %s está abaixo do estoque mínimo (%d unidades)", s.Name, s.Quantity),
			UserID:  s.UserID,
			ItemID:  s.ProductID,
		})
	}
	if IsHighStock(s.Quantity, s.MaxQuantity) {
		out = append(out, Draft{
			Type:    TypeStock,
			Message: fmt.Sprintf("Produto %s está acima do estoque máximo (%d unidades)", s.Name, s.Quantity),
			UserID:  s.UserID,
			ItemID:  s.ProductID,
		})
	}
	return out
}

// DaysUntil cuenta días enteros de now a t, truncando hacia cero. Negativo si t ya pasó.
func DaysUntil(t, now time.Time) int {
	return int(t.Sub(now) / day)
}

// EvaluateVaccine alerta si faltan 30 días o menos (incluye vencidas).
func EvaluateVaccine(v VaccineExpiry, now time.Time) (Draft, bool) {
	days := DaysUntil(v.ExpirationDate, now)
	if days > VaccineWindowDays {
		return Draft{}, false
	}
	return Draft{
		Type:    TypeVaccine,
		Message: fmt.Sprintf("Vacina %s para %s vence em %d dias", v.VaccineName, v.AnimalName, days),
		UserID:  v.TutorID,
		ItemID:  v.VaccineID,
	}, true
}

// IsExpiringSoon: vence estrictamente después de now y antes de now+30 días.
func IsExpiringSoon(expiration, now time.Time) bool {
	return expiration.After(now) && expiration.Before(now.Add(VaccineWindowDays*day))
}
