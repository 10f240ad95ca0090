// Package dashboard agrega los contadores de la pantalla inicial.
package dashboard

import (
	"context"
	"time"

	"vetstock/internal/domain/alerts"
	"vetstock/internal/domain/animals"
	"vetstock/internal/domain/products"
	"vetstock/internal/domain/vaccines"
)

type ProductLister interface {
	ListByUser(ctx context.Context, userID int64) ([]products.Product, error)
}

type AnimalLister interface {
	ListByTutor(ctx context.Context, tutorID int64) ([]animals.Animal, error)
}

type VaccineLister interface {
	ListByTutor(ctx context.Context, tutorID int64) ([]vaccines.Vaccine, error)
}

type Stats struct {
	ProductCount     int `json:"productCount"`
	StockAlerts      int `json:"stockAlerts"`
	AnimalCount      int `json:"animalCount"`
	ExpiringVaccines int `json:"expiringVaccines"`
}

type Service struct {
	products ProductLister
	animals  AnimalLister
	vaccines VaccineLister
	now      func() time.Time
}

func NewService(p ProductLister, a AnimalLister, v VaccineLister) *Service {
	return &Service{products: p, animals: a, vaccines: v, now: time.Now}
}

// Stats calcula los contadores del usuario con las mismas reglas que las alertas.
// stockAlerts cuenta condiciones, no productos: bajo + alto.
func (s *Service) Stats(ctx context.Context, userID int64) (Stats, error) {
	now := s.now()

	prods, err := s.products.ListByUser(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	owned, err := s.animals.ListByTutor(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	vacs, err := s.vaccines.ListByTutor(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{ProductCount: len(prods), AnimalCount: len(owned)}
	for _, p := range prods {
		if alerts.IsLowStock(p.Quantity, p.MinQuantity) {
			st.StockAlerts++
		}
		if alerts.IsHighStock(p.Quantity, p.MaxQuantity) {
			st.StockAlerts++
		}
	}
	for _, v := range vacs {
		if alerts.IsExpiringSoon(v.ExpirationDate, now) {
			st.ExpiringVaccines++
		}
	}
	return st, nil
}
