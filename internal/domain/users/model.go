package users

import (
	"time"

	"vetstock/internal/ports/auth"
)

// Role define el tipo de cuenta (JSON: userType).
// @Enum admin, user
type Role string

const (
	RoleAdmin Role = auth.RoleAdmin
	RoleUser  Role = auth.RoleUser
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User es una cuenta de la clínica. Nunca se borra.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool

	// Inicio del período de prueba (= fecha de registro).
	TrialStartDate time.Time

	StripeCustomerID     *string
	StripeSubscriptionID *string
}
