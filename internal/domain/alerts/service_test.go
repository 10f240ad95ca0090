package alerts

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	nextID  int64
	byID    map[int64]Alert
	failAll bool
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Alert{}} }

func (r *testRepo) Create(_ context.Context, a Alert) (Alert, error) {
	if r.failAll {
		return Alert{}, errors.New("storage down")
	}
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Alert, error) {
	a, ok := r.byID[id]
	if !ok {
		return Alert{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListByUser(_ context.Context, userID int64) ([]Alert, error) {
	out := []Alert{}
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *testRepo) Resolve(_ context.Context, id int64) error {
	a, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	a.Resolved = true
	r.byID[id] = a
	return nil
}

type mockRecorder struct{ mock.Mock }

func (m *mockRecorder) AlertEmitted(alertType string) { m.Called(alertType) }

var now = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func TestCheckStock_PersistsAndRecords(t *testing.T) {
	repo := newTestRepo()
	rec := &mockRecorder{}
	rec.On("AlertEmitted", "estoque").Once()

	svc := NewService(repo, nil, rec)
	svc.now = func() time.Time { return now }

	out := svc.CheckStock(context.Background(), StockLevel{ProductID: 2, UserID: 1, Name: "Seringa", Quantity: 5, MinQuantity: 10})

	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, now, out[0].CreatedAt)
	assert.False(t, out[0].Resolved)
	require.NotNil(t, out[0].ItemID)
	assert.Equal(t, int64(2), *out[0].ItemID)
	rec.AssertExpectations(t)
}

func TestCheckVaccine_InsideAndOutsideWindow(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)
	svc.now = func() time.Time { return now }

	out := svc.CheckVaccine(context.Background(), VaccineExpiry{VaccineID: 1, VaccineName: "Raiva", AnimalName: "Mia", TutorID: 3, ExpirationDate: now.AddDate(0, 0, 10)})
	require.Len(t, out, 1)
	assert.Equal(t, "Vacina Raiva para Mia vence em 10 dias", out[0].Message)

	out = svc.CheckVaccine(context.Background(), VaccineExpiry{VaccineID: 2, VaccineName: "Raiva", AnimalName: "Mia", TutorID: 3, ExpirationDate: now.AddDate(0, 0, 40)})
	assert.Empty(t, out)
	assert.Len(t, repo.byID, 1)
}

func TestCheckStock_StorageFailureIsSwallowed(t *testing.T) {
	repo := newTestRepo()
	repo.failAll = true
	rec := &mockRecorder{}

	svc := NewService(repo, nil, rec)

	out := svc.CheckStock(context.Background(), StockLevel{Name: "X", Quantity: 0, MinQuantity: 1})
	assert.Empty(t, out)
	rec.AssertNotCalled(t, "AlertEmitted", mock.Anything)
}

func TestResolve_IsIdempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	out := svc.CheckStock(ctx, StockLevel{UserID: 1, Name: "X", Quantity: 0, MinQuantity: 1})
	require.Len(t, out, 1)

	first, err := svc.Resolve(ctx, out[0].ID)
	require.NoError(t, err)
	assert.True(t, first.Resolved)

	second, err := svc.Resolve(ctx, out[0].ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = svc.Resolve(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Resolve(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNoDeduplication(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	lvl := StockLevel{ProductID: 1, UserID: 1, Name: "X", Quantity: 0, MinQuantity: 1}
	svc.CheckStock(ctx, lvl)
	svc.CheckStock(ctx, lvl)

	list, err := svc.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Greater(t, list[0].ID, list[1].ID)
}
