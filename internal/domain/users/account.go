package users

import (
	"context"

	"vetstock/internal/domain/entitlement"
	"vetstock/internal/ports/auth"
)

// AccountOf expone los datos de trial/suscripción para el guard de entitlement.
func (s *Service) AccountOf(ctx context.Context, userID int64) (entitlement.Account, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return entitlement.Account{}, err
	}
	return accountOf(u), nil
}

// ClaimsOf recarga al usuario de una sesión. Inactivo => ErrInactive.
func (s *Service) ClaimsOf(ctx context.Context, userID int64) (auth.Claims, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return auth.Claims{}, err
	}
	if !u.Active {
		return auth.Claims{}, ErrInactive
	}
	return auth.Claims{UserID: u.ID, Email: u.Email, Role: string(u.Role)}, nil
}

func accountOf(u User) entitlement.Account {
	a := entitlement.Account{TrialStartDate: u.TrialStartDate}
	if u.StripeSubscriptionID != nil {
		a.SubscriptionID = *u.StripeSubscriptionID
	}
	return a
}
