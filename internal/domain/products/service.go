package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vetstock/internal/domain/alerts"
	"vetstock/internal/platform/patch"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

// StockAlerter evalúa las reglas de estoque después de cada escritura.
type StockAlerter interface {
	CheckStock(ctx context.Context, level alerts.StockLevel) []alerts.Alert
}

type Service struct {
	repo    Repository
	alerter StockAlerter
}

func NewService(repo Repository, alerter StockAlerter) *Service {
	return &Service{repo: repo, alerter: alerter}
}

type CreateInput struct {
	Name        string
	Quantity    int
	MinQuantity int
	MaxQuantity *int
	Category    *string
}

// Create fuerza userID al usuario autenticado y dispara las reglas de estoque.
func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (Product, error) {
	if userID <= 0 {
		return Product{}, ErrInvalidInput
	}

	p := Product{
		Name:        strings.TrimSpace(in.Name),
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		MaxQuantity: in.MaxQuantity,
		Category:    trimmed(in.Category),
		UserID:      userID,
	}
	if err := check(p); err != nil {
		return Product{}, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Product{}, err
	}

	s.checkAlerts(ctx, created)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Product, error) {
	return s.repo.ListByUser(ctx, userID)
}

type UpdateInput struct {
	// nil = no tocar.
	Name        *string
	Quantity    *int
	MinQuantity *int
	// admiten null para limpiar.
	MaxQuantity patch.Field[int]
	Category    patch.Field[string]
}

// Update hace merge superficial, persiste y vuelve a evaluar las reglas.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		p.MinQuantity = *in.MinQuantity
	}
	p.MaxQuantity = in.MaxQuantity.Apply(p.MaxQuantity)
	p.Category = trimmed(in.Category.Apply(p.Category))

	if err := check(p); err != nil {
		return Product{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Product{}, err
	}

	s.checkAlerts(ctx, p)
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkAlerts(ctx context.Context, p Product) {
	if s.alerter == nil {
		return
	}
	s.alerter.CheckStock(ctx, StockLevelOf(p))
}

// StockLevelOf adapta el producto a la entrada de las reglas de alerta.
func StockLevelOf(p Product) alerts.StockLevel {
	return alerts.StockLevel{
		ProductID:   p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		MaxQuantity: p.MaxQuantity,
	}
}

func check(p Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name", ErrInvalidInput)
	}
	if p.Quantity < 0 || p.MinQuantity < 0 {
		return fmt.Errorf("%w: negative quantity", ErrInvalidInput)
	}
	if p.MaxQuantity != nil && *p.MaxQuantity < 0 {
		return fmt.Errorf("%w: negative maxQuantity", ErrInvalidInput)
	}
	return nil
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
