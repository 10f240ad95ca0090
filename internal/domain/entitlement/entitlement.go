// Package entitlement decide si una cuenta puede usar la aplicación:
// suscripción vigente o período de prueba de 7 días.
package entitlement

import (
	"strings"
	"time"
)

const (
	TrialDays   = 7
	day         = 24 * time.Hour
	TrialPeriod = TrialDays * day
)

// Account es lo mínimo que el cálculo necesita de un usuario.
type Account struct {
	TrialStartDate time.Time
	SubscriptionID string
}

func (a Account) hasSubscription() bool {
	return strings.TrimSpace(a.SubscriptionID) != ""
}

// TrialEnd = inicio + 7 días.
func (a Account) TrialEnd() time.Time {
	return a.TrialStartDate.Add(TrialPeriod)
}

// TrialDaysLeft devuelve los días enteros que faltan para el fin del trial,
// truncando: a 23h del final ya es 0. Nunca negativo.
func TrialDaysLeft(a Account, now time.Time) int {
	end := a.TrialEnd()
	if !now.Before(end) {
		return 0
	}
	return int(end.Sub(now) / day)
}

// IsSubscriptionActive: con suscripción siempre true; sin ella, mientras queden días de trial.
func IsSubscriptionActive(a Account, now time.Time) bool {
	if a.hasSubscription() {
		return true
	}
	return TrialDaysLeft(a, now) > 0
}

// Status es el resumen que acompaña las respuestas de usuario.
type Status struct {
	IsSubscribed  bool `json:"isSubscribed"`
	TrialDaysLeft int  `json:"trialDaysLeft"`
}

func StatusOf(a Account, now time.Time) Status {
	return Status{
		IsSubscribed:  IsSubscriptionActive(a, now),
		TrialDaysLeft: TrialDaysLeft(a, now),
	}
}
