package users

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]User{}}
}

func (r *testRepo) Create(_ context.Context, u User) (User, error) {
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(_ context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) GetBySubscriptionID(_ context.Context, sub string) (User, error) {
	for _, u := range r.byID {
		if u.StripeSubscriptionID != nil && *u.StripeSubscriptionID == sub {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) Update(_ context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

var fixedNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return fixedNow }
	svc.bcryptCost = bcrypt.MinCost
	return svc, repo
}

func TestRegister_StartsTrialAndHashesPassword(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), RegisterInput{Name: " Ana ", Email: "ana@clinic.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, RoleUser, u.Role)
	assert.True(t, u.Active)
	assert.Equal(t, fixedNow, u.TrialStartDate)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))

	st := svc.Status(u)
	assert.True(t, st.IsSubscribed)
	assert.Equal(t, 7, st.TrialDaysLeft)
}

func TestStatusAt_TrialStartReportsFullTrial(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@clinic.com", Password: "secret1"})
	require.NoError(t, err)

	// un segundo después el cálculo "ahora" ya trunca a 6
	svc.now = func() time.Time { return fixedNow.Add(time.Second) }
	assert.Equal(t, 6, svc.Status(u).TrialDaysLeft)
	assert.Equal(t, 7, svc.StatusAt(u, u.TrialStartDate).TrialDaysLeft)
}

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@clinic.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "Other", Email: "ANA@Clinic.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@clinic.com", Password: "123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@clinic.com", Password: "secret1", Role: "root"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@clinic.com", Password: "secret1"})
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, "ANA@clinic.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Authenticate(ctx, "ana@clinic.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@clinic.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	u.Active = false
	require.NoError(t, repo.Update(ctx, u))
	_, err = svc.Authenticate(ctx, "ana@clinic.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.ClaimsOf(ctx, u.ID)
	assert.ErrorIs(t, err, ErrInactive)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, _ := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@clinic.com", Password: "secret1"})
	_, _ = svc.Register(ctx, RegisterInput{Name: "Bia", Email: "bia@clinic.com", Password: "secret1"})

	name := "Ana Souza"
	updated, err := svc.UpdateProfile(ctx, a.ID, ProfileInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", updated.Name)
	assert.Equal(t, "ana@clinic.com", updated.Email)

	taken := "BIA@clinic.com"
	_, err = svc.UpdateProfile(ctx, a.ID, ProfileInput{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// cambiar solo mayúsculas del propio email está permitido
	same := "Ana@Clinic.com"
	updated, err = svc.UpdateProfile(ctx, a.ID, ProfileInput{Email: &same})
	require.NoError(t, err)
	assert.Equal(t, "Ana@Clinic.com", updated.Email)
}

func TestBillingAttachAndClear(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, _ := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@clinic.com", Password: "secret1"})

	u, err := svc.AttachBilling(ctx, u.ID, "cus_1", "sub_1")
	require.NoError(t, err)
	require.NotNil(t, u.StripeSubscriptionID)

	acct, err := svc.AccountOf(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "sub_1", acct.SubscriptionID)

	cleared, err := svc.ClearSubscription(ctx, "sub_1")
	require.NoError(t, err)
	assert.True(t, cleared)

	got, _ := svc.GetByID(ctx, u.ID)
	assert.Nil(t, got.StripeSubscriptionID)
	require.NotNil(t, got.StripeCustomerID)
	assert.Equal(t, "cus_1", *got.StripeCustomerID)

	cleared, err = svc.ClearSubscription(ctx, "sub_unknown")
	require.NoError(t, err)
	assert.False(t, cleared)
}

func TestEnsureAdmin_IsIdempotent(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin@vetstock.com", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin@vetstock.com", "admin123")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.byID, 1)

	admin, err := svc.Authenticate(ctx, "admin@vetstock.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.Equal(t, "Administrador", admin.Name)
}
