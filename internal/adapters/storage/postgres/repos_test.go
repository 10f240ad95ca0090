package postgres

import (
	"context"
	"database/sql"
	"io/fs"
	"os"
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

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, names, "migrations/000001_init.up.sql")
	assert.Contains(t, names, "migrations/000001_init.down.sql")
}

func TestMigrateURL(t *testing.T) {
	got, err := migrateURL("postgres://u:p@localhost:5432/vet?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://u:p@localhost:5432/vet?sslmode=disable", got)

	_, err = migrateURL("host=localhost user=u dbname=vet")
	assert.Error(t, err)
}

// testDB abre una base real con TEST_DATABASE_URL=postgres://...; sin ella el test se saltea.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, Migrate(url))
	db, err := Open(url)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.Exec(`TRUNCATE users, animals, vaccines, products, alerts RESTART IDENTITY`)
		_ = db.Close()
	})
	_, err = db.Exec(`TRUNCATE users, animals, vaccines, products, alerts RESTART IDENTITY`)
	require.NoError(t, err)
	return db
}

func TestUsersRepo(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	r := NewUsersRepo(db)

	u, err := r.Create(ctx, users.User{
		Name: "Ana", Email: "Ana@Vet.com", PasswordHash: "h",
		Role: users.RoleUser, Active: true, TrialStartDate: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	_, err = r.Create(ctx, users.User{Name: "B", Email: "ana@vet.com", PasswordHash: "h", Role: users.RoleUser, TrialStartDate: time.Now()})
	assert.ErrorIs(t, err, users.ErrEmailTaken)

	got, err := r.GetByEmail(ctx, "ANA@vet.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Nil(t, got.StripeSubscriptionID)

	sub := "sub_1"
	got.StripeSubscriptionID = &sub
	require.NoError(t, r.Update(ctx, got))

	bySub, err := r.GetBySubscriptionID(ctx, "sub_1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, bySub.ID)

	_, err = r.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestAnimalsProductsVaccinesAlerts(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	ar := NewAnimalsRepo(db)
	a, err := ar.Create(ctx, animals.Animal{Name: "Rex", Species: "Cachorro", TutorID: 1})
	require.NoError(t, err)
	list, err := ar.ListByTutor(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Breed)

	pr := NewProductsRepo(db)
	max := 40
	p, err := pr.Create(ctx, products.Product{Name: "Ração", Quantity: 5, MinQuantity: 10, MaxQuantity: &max, UserID: 1})
	require.NoError(t, err)
	gotP, err := pr.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, gotP.MaxQuantity)
	assert.Equal(t, 40, *gotP.MaxQuantity)
	assert.ErrorIs(t, pr.Delete(ctx, 9999), products.ErrNotFound)

	vr := NewVaccinesRepo(db)
	now := time.Now().UTC().Truncate(time.Second)
	_, err = vr.Create(ctx, vaccines.Vaccine{Name: "V10", ApplicationDate: now, ExpirationDate: now.Add(24 * time.Hour), AnimalID: a.ID})
	require.NoError(t, err)
	vs, err := vr.ListByAnimals(ctx, []int64{a.ID, 12345})
	require.NoError(t, err)
	assert.Len(t, vs, 1)

	alr := NewAlertsRepo(db)
	al, err := alr.Create(ctx, alerts.Alert{Type: alerts.TypeStock, Message: "m", CreatedAt: now, UserID: 1, ItemID: &p.ID})
	require.NoError(t, err)
	require.NoError(t, alr.Resolve(ctx, al.ID))
	gotA, err := alr.GetByID(ctx, al.ID)
	require.NoError(t, err)
	assert.True(t, gotA.Resolved)
	require.NotNil(t, gotA.ItemID)
	assert.Equal(t, p.ID, *gotA.ItemID)
}
