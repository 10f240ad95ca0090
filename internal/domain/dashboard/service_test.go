package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetstock/internal/domain/animals"
	"vetstock/internal/domain/products"
	"vetstock/internal/domain/vaccines"
)

type fakeProducts []products.Product

func (f fakeProducts) ListByUser(_ context.Context, userID int64) ([]products.Product, error) {
	out := []products.Product{}
	for _, p := range f {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAnimals []animals.Animal

func (f fakeAnimals) ListByTutor(_ context.Context, tutorID int64) ([]animals.Animal, error) {
	out := []animals.Animal{}
	for _, a := range f {
		if a.TutorID == tutorID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeVaccines map[int64][]vaccines.Vaccine

func (f fakeVaccines) ListByTutor(_ context.Context, tutorID int64) ([]vaccines.Vaccine, error) {
	return f[tutorID], nil
}

func intPtr(v int) *int { return &v }

func TestStats(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	prods := fakeProducts{
		{ID: 1, UserID: 1, Name: "A", Quantity: 1, MinQuantity: 5},
		{ID: 2, UserID: 1, Name: "B", Quantity: 0, MinQuantity: 2},
		{ID: 3, UserID: 1, Name: "C", Quantity: 90, MinQuantity: 5, MaxQuantity: intPtr(50)},
		{ID: 4, UserID: 1, Name: "D", Quantity: 10, MinQuantity: 5, MaxQuantity: intPtr(50)},
		{ID: 5, UserID: 2, Name: "other", Quantity: 0, MinQuantity: 5},
	}
	pets := fakeAnimals{
		{ID: 1, TutorID: 1}, {ID: 2, TutorID: 1}, {ID: 3, TutorID: 1}, {ID: 4, TutorID: 2},
	}
	vacs := fakeVaccines{1: {
		{ID: 1, AnimalID: 1, ExpirationDate: now.AddDate(0, 0, 5)},
		{ID: 2, AnimalID: 2, ExpirationDate: now.AddDate(0, 0, 60)},
		{ID: 3, AnimalID: 3, ExpirationDate: now.AddDate(0, 0, -2)},
	}}

	svc := NewService(prods, pets, vacs)
	svc.now = func() time.Time { return now }

	st, err := svc.Stats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, Stats{ProductCount: 4, StockAlerts: 3, AnimalCount: 3, ExpiringVaccines: 1}, st)
}

func TestStats_EmptyUser(t *testing.T) {
	svc := NewService(fakeProducts{}, fakeAnimals{}, fakeVaccines{})

	st, err := svc.Stats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}
