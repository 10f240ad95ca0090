package vaccines

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetstock/internal/domain/alerts"
	"vetstock/internal/domain/animals"
)

type testRepo struct {
	nextID int64
	byID   map[int64]Vaccine
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Vaccine{}} }

func (r *testRepo) Create(_ context.Context, v Vaccine) (Vaccine, error) {
	r.nextID++
	v.ID = r.nextID
	r.byID[v.ID] = v
	return v, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Vaccine, error) {
	v, ok := r.byID[id]
	if !ok {
		return Vaccine{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) ListByAnimal(ctx context.Context, animalID int64) ([]Vaccine, error) {
	return r.ListByAnimals(ctx, []int64{animalID})
}

func (r *testRepo) ListByAnimals(_ context.Context, ids []int64) ([]Vaccine, error) {
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := []Vaccine{}
	for id := int64(1); id <= r.nextID; id++ {
		if v, ok := r.byID[id]; ok && want[v.AnimalID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *testRepo) Update(_ context.Context, v Vaccine) error {
	if _, ok := r.byID[v.ID]; !ok {
		return ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeAnimals map[int64]animals.Animal

func (f fakeAnimals) GetByID(_ context.Context, id int64) (animals.Animal, error) {
	a, ok := f[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (f fakeAnimals) ListByTutor(_ context.Context, tutorID int64) ([]animals.Animal, error) {
	out := []animals.Animal{}
	for _, a := range f {
		if a.TutorID == tutorID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeAlerter struct {
	now    time.Time
	drafts []alerts.Draft
}

func (f *fakeAlerter) CheckVaccine(_ context.Context, v alerts.VaccineExpiry) []alerts.Alert {
	if d, ok := alerts.EvaluateVaccine(v, f.now); ok {
		f.drafts = append(f.drafts, d)
	}
	return nil
}

var today = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

func fixtures() (*Service, *fakeAlerter) {
	pets := fakeAnimals{
		1: {ID: 1, Name: "Rex", Species: "cão", TutorID: 10},
		2: {ID: 2, Name: "Mia", Species: "gato", TutorID: 10},
		3: {ID: 3, Name: "Bob", Species: "cão", TutorID: 20},
	}
	al := &fakeAlerter{now: today}
	return NewService(newTestRepo(), pets, al), al
}

func TestCreate_ExpiringSoonEmitsAlert(t *testing.T) {
	svc, al := fixtures()

	v, err := svc.Create(context.Background(), CreateInput{
		Name:            "V10",
		ApplicationDate: today.AddDate(-1, 0, 0),
		ExpirationDate:  today.AddDate(0, 0, 10),
		AnimalID:        1,
	})
	require.NoError(t, err)

	require.Len(t, al.drafts, 1)
	assert.Equal(t, "Vacina V10 para Rex vence em 10 dias", al.drafts[0].Message)
	assert.Equal(t, int64(10), al.drafts[0].UserID)
	assert.Equal(t, v.ID, al.drafts[0].ItemID)
}

func TestCreate_FarExpiryNoAlert(t *testing.T) {
	svc, al := fixtures()

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "Raiva", ApplicationDate: today, ExpirationDate: today.AddDate(0, 0, 40), AnimalID: 1,
	})
	require.NoError(t, err)
	assert.Empty(t, al.drafts)
}

func TestCreate_UnknownAnimalSkipsAlert(t *testing.T) {
	svc, al := fixtures()

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "V8", ApplicationDate: today, ExpirationDate: today.AddDate(0, 0, 2), AnimalID: 99,
	})
	require.NoError(t, err)
	assert.Empty(t, al.drafts)
}

func TestCreate_RejectsExpirationBeforeApplication(t *testing.T) {
	svc, _ := fixtures()

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "V8", ApplicationDate: today, ExpirationDate: today.AddDate(0, 0, -1), AnimalID: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ErrDateOrder)
}

func TestListByTutor(t *testing.T) {
	svc, _ := fixtures()
	ctx := context.Background()

	for _, animalID := range []int64{1, 2, 3} {
		_, err := svc.Create(ctx, CreateInput{Name: "V", ApplicationDate: today, ExpirationDate: today.AddDate(1, 0, 0), AnimalID: animalID})
		require.NoError(t, err)
	}

	mine, err := svc.ListByTutor(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := svc.ListByTutor(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)

	byAnimal, err := svc.ListByAnimal(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, byAnimal, 1)
}

func TestUpdate_DoesNotAlertAndKeepsDateOrder(t *testing.T) {
	svc, al := fixtures()
	ctx := context.Background()

	v, _ := svc.Create(ctx, CreateInput{Name: "V", ApplicationDate: today, ExpirationDate: today.AddDate(1, 0, 0), AnimalID: 1})

	soon := today.AddDate(0, 0, 3)
	updated, err := svc.Update(ctx, v.ID, UpdateInput{ExpirationDate: &soon})
	require.NoError(t, err)
	assert.Equal(t, soon, updated.ExpirationDate)
	assert.Empty(t, al.drafts)

	before := today.AddDate(0, 0, -10)
	_, err = svc.Update(ctx, v.ID, UpdateInput{ExpirationDate: &before})
	assert.ErrorIs(t, err, ErrDateOrder)
}
