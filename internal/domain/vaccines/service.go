package vaccines

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vetstock/internal/domain/alerts"
	"vetstock/internal/domain/animals"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("vaccine not found")
	ErrDateOrder    = errors.New("expiration before application")
)

// AnimalLookup evita depender del servicio concreto de animales.
type AnimalLookup interface {
	GetByID(ctx context.Context, id int64) (animals.Animal, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]animals.Animal, error)
}

// ExpiryAlerter evalúa la regla de vencimiento al crear una vacuna.
type ExpiryAlerter interface {
	CheckVaccine(ctx context.Context, v alerts.VaccineExpiry) []alerts.Alert
}

type Service struct {
	repo    Repository
	animals AnimalLookup
	alerter ExpiryAlerter
}

func NewService(repo Repository, animals AnimalLookup, alerter ExpiryAlerter) *Service {
	return &Service{repo: repo, animals: animals, alerter: alerter}
}

type CreateInput struct {
	Name            string
	ApplicationDate time.Time
	ExpirationDate  time.Time
	AnimalID        int64
}

// Create persiste la vacuna y, si el animal existe, evalúa la alerta de vencimiento.
// La autorización sobre el animal la hace el handler antes de llamar.
func (s *Service) Create(ctx context.Context, in CreateInput) (Vaccine, error) {
	v := Vaccine{
		Name:            strings.TrimSpace(in.Name),
		ApplicationDate: in.ApplicationDate,
		ExpirationDate:  in.ExpirationDate,
		AnimalID:        in.AnimalID,
	}
	if err := check(v); err != nil {
		return Vaccine{}, err
	}

	created, err := s.repo.Create(ctx, v)
	if err != nil {
		return Vaccine{}, err
	}

	if s.alerter != nil {
		// animal inexistente => sin alerta
		if a, err := s.animals.GetByID(ctx, created.AnimalID); err == nil {
			s.alerter.CheckVaccine(ctx, alerts.VaccineExpiry{
				VaccineID:      created.ID,
				VaccineName:    created.Name,
				AnimalName:     a.Name,
				TutorID:        a.TutorID,
				ExpirationDate: created.ExpirationDate,
			})
		}
	}

	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Vaccine, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByAnimal(ctx context.Context, animalID int64) ([]Vaccine, error) {
	return s.repo.ListByAnimal(ctx, animalID)
}

// ListByTutor devuelve las vacunas de todos los animales del tutor.
func (s *Service) ListByTutor(ctx context.Context, tutorID int64) ([]Vaccine, error) {
	owned, err := s.animals.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return []Vaccine{}, nil
	}

	ids := make([]int64, 0, len(owned))
	for _, a := range owned {
		ids = append(ids, a.ID)
	}
	return s.repo.ListByAnimals(ctx, ids)
}

type UpdateInput struct {
	// nil = no tocar.
	Name            *string
	ApplicationDate *time.Time
	ExpirationDate  *time.Time
	AnimalID        *int64
}

// Update hace merge superficial. No vuelve a evaluar alertas.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Vaccine, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vaccine{}, err
	}

	if in.Name != nil {
		v.Name = strings.TrimSpace(*in.Name)
	}
	if in.ApplicationDate != nil {
		v.ApplicationDate = *in.ApplicationDate
	}
	if in.ExpirationDate != nil {
		v.ExpirationDate = *in.ExpirationDate
	}
	if in.AnimalID != nil {
		v.AnimalID = *in.AnimalID
	}

	if err := check(v); err != nil {
		return Vaccine{}, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return Vaccine{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func check(v Vaccine) error {
	if v.Name == "" {
		return fmt.Errorf("%w: name", ErrInvalidInput)
	}
	if v.AnimalID <= 0 {
		return fmt.Errorf("%w: animalId", ErrInvalidInput)
	}
	if v.ApplicationDate.IsZero() || v.ExpirationDate.IsZero() {
		return fmt.Errorf("%w: dates", ErrInvalidInput)
	}
	if v.ExpirationDate.Before(v.ApplicationDate) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrDateOrder)
	}
	return nil
}
