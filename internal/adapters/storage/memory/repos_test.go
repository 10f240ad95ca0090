package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetstock/internal/domain/alerts"
	"vetstock/internal/domain/animals"
	"vetstock/internal/domain/products"
	"vetstock/internal/domain/users"
	"vetstock/internal/domain/vaccines"
)

func TestUserRepo_EmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepo()

	u, err := r.Create(ctx, users.User{Name: "Ana", Email: "Ana@Vet.com", Role: users.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	got, err := r.GetByEmail(ctx, "ana@vet.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = r.Create(ctx, users.User{Name: "Outra", Email: "ANA@VET.COM"})
	assert.ErrorIs(t, err, users.ErrEmailTaken)

	_, err = r.GetByEmail(ctx, "x@vet.com")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserRepo_BySubscription(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepo()

	u, err := r.Create(ctx, users.User{Email: "a@a.com"})
	require.NoError(t, err)

	sub := "sub_123"
	u.StripeSubscriptionID = &sub
	require.NoError(t, r.Update(ctx, u))

	got, err := r.GetBySubscriptionID(ctx, "sub_123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = r.GetBySubscriptionID(ctx, "sub_999")
	assert.ErrorIs(t, err, users.ErrNotFound)

	assert.ErrorIs(t, r.Update(ctx, users.User{ID: 42}), users.ErrNotFound)
}

func TestAnimalRepo_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	r := NewAnimalRepo()

	a1, _ := r.Create(ctx, animals.Animal{Name: "Rex", Species: "Cachorro", TutorID: 1})
	_, _ = r.Create(ctx, animals.Animal{Name: "Mia", Species: "Gato", TutorID: 2})
	a3, _ := r.Create(ctx, animals.Animal{Name: "Bob", Species: "Cachorro", TutorID: 1})

	list, err := r.ListByTutor(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a1.ID, list[0].ID)
	assert.Equal(t, a3.ID, list[1].ID)

	require.NoError(t, r.Delete(ctx, a1.ID))
	assert.ErrorIs(t, r.Delete(ctx, a1.ID), animals.ErrNotFound)
	_, err = r.GetByID(ctx, a1.ID)
	assert.ErrorIs(t, err, animals.ErrNotFound)
}

func TestProductRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo()

	p, err := r.Create(ctx, products.Product{Name: "Vermífugo", Quantity: 5, MinQuantity: 10, UserID: 1})
	require.NoError(t, err)

	p.Quantity = 20
	require.NoError(t, r.Update(ctx, p))

	got, err := r.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Quantity)

	list, _ := r.ListByUser(ctx, 2)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	assert.ErrorIs(t, r.Update(ctx, products.Product{ID: 99}), products.ErrNotFound)
}

func TestVaccineRepo_ListByAnimals(t *testing.T) {
	ctx := context.Background()
	r := NewVaccineRepo()
	now := time.Now()

	_, _ = r.Create(ctx, vaccines.Vaccine{Name: "V10", ApplicationDate: now, ExpirationDate: now, AnimalID: 1})
	_, _ = r.Create(ctx, vaccines.Vaccine{Name: "Raiva", ApplicationDate: now, ExpirationDate: now, AnimalID: 2})
	_, _ = r.Create(ctx, vaccines.Vaccine{Name: "Gripe", ApplicationDate: now, ExpirationDate: now, AnimalID: 3})

	list, err := r.ListByAnimals(ctx, []int64{1, 3})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "V10", list[0].Name)
	assert.Equal(t, "Gripe", list[1].Name)

	one, err := r.ListByAnimal(ctx, 2)
	require.NoError(t, err)
	require.Len(t, one, 1)

	none, err := r.ListByAnimals(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAlertRepo_OrderAndResolve(t *testing.T) {
	ctx := context.Background()
	r := NewAlertRepo()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	old, _ := r.Create(ctx, alerts.Alert{Type: alerts.TypeStock, Message: "a", CreatedAt: base, UserID: 1})
	sameA, _ := r.Create(ctx, alerts.Alert{Type: alerts.TypeStock, Message: "b", CreatedAt: base.Add(time.Hour), UserID: 1})
	sameB, _ := r.Create(ctx, alerts.Alert{Type: alerts.TypeVaccine, Message: "c", CreatedAt: base.Add(time.Hour), UserID: 1})
	_, _ = r.Create(ctx, alerts.Alert{Type: alerts.TypeStock, Message: "x", CreatedAt: base, UserID: 2})

	list, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{sameB.ID, sameA.ID, old.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})

	require.NoError(t, r.Resolve(ctx, old.ID))
	require.NoError(t, r.Resolve(ctx, old.ID))
	got, _ := r.GetByID(ctx, old.ID)
	assert.True(t, got.Resolved)

	assert.ErrorIs(t, r.Resolve(ctx, 999), alerts.ErrNotFound)
}
