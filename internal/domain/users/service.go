package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"vetstock/internal/domain/entitlement"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactive           = errors.New("user inactive")
)

const minPasswordLen = 6

type Service struct {
	repo       Repository
	now        func() time.Time
	bcryptCost int
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:       repo,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// WithClock reemplaza el reloj del service.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || len(in.Password) < minPasswordLen {
		return User{}, ErrInvalidInput
	}

	role := in.Role
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return User{}, fmt.Errorf("%w: userType %q", ErrInvalidInput, role)
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, User{
		Name:           name,
		Email:          email,
		PasswordHash:   string(hash),
		Role:           role,
		Active:         true,
		TrialStartDate: s.now(),
	})
}

// Authenticate valida email y password. Usuario inexistente, inactivo o
// password incorrecta devuelven el mismo ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !u.Active {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

type ProfileInput struct {
	// nil = no tocar.
	Name  *string
	Email *string
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, in ProfileInput) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return User{}, fmt.Errorf("%w: name", ErrInvalidInput)
		}
		u.Name = name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return User{}, fmt.Errorf("%w: email", ErrInvalidInput)
		}
		if !strings.EqualFold(email, u.Email) {
			other, err := s.repo.GetByEmail(ctx, email)
			if err == nil && other.ID != u.ID {
				return User{}, ErrEmailTaken
			}
			if err != nil && !errors.Is(err, ErrNotFound) {
				return User{}, err
			}
		}
		u.Email = email
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// AttachBilling guarda los ids del procesador de pagos en el usuario.
func (s *Service) AttachBilling(ctx context.Context, id int64, customerID, subscriptionID string) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	u.StripeCustomerID = &customerID
	u.StripeSubscriptionID = &subscriptionID
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// ClearSubscription quita la suscripción del usuario que la tenga.
// Devuelve false si ningún usuario la referencia.
func (s *Service) ClearSubscription(ctx context.Context, subscriptionID string) (bool, error) {
	u, err := s.repo.GetBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	u.StripeSubscriptionID = nil
	if err := s.repo.Update(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureAdmin crea el admin por defecto si el email no existe todavía.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, nil
	}
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	_, err = s.Register(ctx, RegisterInput{
		Name:     "Administrador",
		Email:    email,
		Password: password,
		Role:     RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Status calcula el estado de suscripción/trial del usuario ahora.
func (s *Service) Status(u User) entitlement.Status {
	return entitlement.StatusOf(accountOf(u), s.now())
}

// StatusAt calcula el estado en un instante dado (al registrar: el inicio del trial).
func (s *Service) StatusAt(u User, at time.Time) entitlement.Status {
	return entitlement.StatusOf(accountOf(u), at)
}
