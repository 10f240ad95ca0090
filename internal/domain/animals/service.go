package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vetstock/internal/platform/patch"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name    string
	Species string
	Breed   *string
}

// Create fuerza tutorID al usuario autenticado, ignorando lo que venga en el body.
func (s *Service) Create(ctx context.Context, tutorID int64, in CreateInput) (Animal, error) {
	if tutorID <= 0 {
		return Animal{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	if name == "" {
		return Animal{}, fmt.Errorf("%w: name", ErrInvalidInput)
	}
	if species == "" {
		return Animal{}, fmt.Errorf("%w: species", ErrInvalidInput)
	}

	return s.repo.Create(ctx, Animal{
		Name:    name,
		Species: species,
		Breed:   trimmed(in.Breed),
		TutorID: tutorID,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByTutor(ctx context.Context, tutorID int64) ([]Animal, error) {
	return s.repo.ListByTutor(ctx, tutorID)
}

type UpdateInput struct {
	// nil = no tocar.
	Name    *string
	Species *string
	// Breed admite null para limpiar.
	Breed patch.Field[string]
}

// Update hace merge superficial sobre el registro actual. TutorID no cambia.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Animal{}, fmt.Errorf("%w: name", ErrInvalidInput)
		}
		a.Name = name
	}
	if in.Species != nil {
		species := strings.TrimSpace(*in.Species)
		if species == "" {
			return Animal{}, fmt.Errorf("%w: species", ErrInvalidInput)
		}
		a.Species = species
	}
	a.Breed = trimmed(in.Breed.Apply(a.Breed))

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
