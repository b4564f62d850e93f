package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/garage-booking/internal/auth"
	domain "github.com/BruksfildServices01/garage-booking/internal/domain/identity"
	"github.com/BruksfildServices01/garage-booking/internal/infra/repository"
	"github.com/BruksfildServices01/garage-booking/internal/models"
	"github.com/BruksfildServices01/garage-booking/internal/testutil"
)

type countingCache struct {
	invalidations int
}

func (c *countingCache) GetList(context.Context) ([]models.Garage, bool)  { return nil, false }
func (c *countingCache) SetList(context.Context, []models.Garage)         {}
func (c *countingCache) Get(context.Context, uint) (*models.Garage, bool) { return nil, false }
func (c *countingCache) Set(context.Context, *models.Garage)              {}
func (c *countingCache) Invalidate(context.Context)                       { c.invalidations++ }

type services struct {
	owner    *RegisterGarageOwner
	customer *RegisterCustomer
	login    *Login
	search   *SearchGarages
	tokens   *auth.TokenIssuer
	cache    *countingCache
}

func newServices(t *testing.T) services {
	t.Helper()
	repo := repository.NewIdentityGormRepository(testutil.NewDB(t))
	hasher := &auth.BcryptHasher{Cost: bcrypt.MinCost}
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	cache := &countingCache{}

	return services{
		owner:    NewRegisterGarageOwner(repo, hasher, tokens, cache),
		customer: NewRegisterCustomer(repo, hasher, tokens),
		login:    NewLogin(repo, hasher, tokens),
		search:   NewSearchGarages(repo),
		tokens:   tokens,
		cache:    cache,
	}
}

func ownerInput(email, garageName string) RegisterGarageOwnerInput {
	return RegisterGarageOwnerInput{
		User:          UserInput{Name: "Ravi", Email: email, Password: "s3cret!"},
		GarageName:    garageName,
		GarageAddress: "12 MG Road",
		LicenseNumber: "LIC-1",
	}
}

func TestRegisterGarageOwner(t *testing.T) {
	s := newServices(t)

	res, err := s.owner.Execute(context.Background(), ownerInput(" Ravi@Example.com ", "Torque House"))
	require.NoError(t, err)

	assert.Equal(t, "ravi@example.com", res.Account.User.Email)
	assert.Equal(t, models.RoleGarageOwner, res.Account.User.Role)
	assert.NotEqual(t, "s3cret!", res.Account.User.PasswordHash)

	g, ok := res.Account.Garage()
	require.True(t, ok)
	assert.Equal(t, res.Account.User.ID, g.OwnerID)
	assert.Equal(t, 1, s.cache.invalidations)

	sub, err := s.tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", sub)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.owner.Execute(ctx, ownerInput("ravi@example.com", "Torque House"))
	require.NoError(t, err)

	_, err = s.owner.Execute(ctx, ownerInput("RAVI@example.com", "Other"))
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = s.customer.Execute(ctx, RegisterCustomerInput{
		User: UserInput{Name: "X", Email: "ravi@example.com", Password: "pw"},
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Equal(t, 1, s.cache.invalidations)
}

func TestRegisterCustomerAndLogin(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	reg, err := s.customer.Execute(ctx, RegisterCustomerInput{
		User:          UserInput{Name: "Asha", Email: "asha@example.com", Password: "pw123"},
		VehicleNumber: "KA01AB1234",
		Phone:         "99999",
	})
	require.NoError(t, err)
	p, ok := reg.Account.Profile()
	require.True(t, ok)
	assert.Equal(t, reg.Account.User.ID, p.ID)

	res, err := s.login.Execute(ctx, "ASHA@example.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, reg.Account.User.ID, res.Account.User.ID)
	p, ok = res.Account.Profile()
	require.True(t, ok)
	assert.Equal(t, "KA01AB1234", p.VehicleNumber)

	sub, err := s.tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", sub)
}

func TestLoginOwnerLoadsGarage(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.owner.Execute(ctx, ownerInput("ravi@example.com", "Torque House"))
	require.NoError(t, err)

	res, err := s.login.Execute(ctx, "ravi@example.com", "s3cret!")
	require.NoError(t, err)
	g, ok := res.Account.Garage()
	require.True(t, ok)
	assert.Equal(t, "Torque House", g.GarageName)
}

func TestLoginInvalidCredentials(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.owner.Execute(ctx, ownerInput("ravi@example.com", "Torque House"))
	require.NoError(t, err)

	_, err = s.login.Execute(ctx, "ravi@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = s.login.Execute(ctx, "nobody@example.com", "s3cret!")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSearchGarages(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.owner.Execute(ctx, ownerInput("a@example.com", "Torque House"))
	require.NoError(t, err)
	_, err = s.owner.Execute(ctx, ownerInput("b@example.com", "Speedy Motors"))
	require.NoError(t, err)

	got, err := s.search.Execute(ctx, "motor")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Speedy Motors", got[0].GarageName)

	got, err = s.search.Execute(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCurrentAccount(t *testing.T) {
	repo := repository.NewIdentityGormRepository(testutil.NewDB(t))
	hasher := &auth.BcryptHasher{Cost: bcrypt.MinCost}
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	ctx := context.Background()

	_, err := NewRegisterCustomer(repo, hasher, tokens).Execute(ctx, RegisterCustomerInput{
		User:          UserInput{Name: "Asha", Email: "asha@example.com", Password: "pw"},
		VehicleNumber: "KA01",
	})
	require.NoError(t, err)

	acc, err := NewCurrentAccount(repo).Execute(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, acc.User.Role)
	_, ok := acc.Profile()
	assert.True(t, ok)

	_, err = NewCurrentAccount(repo).Execute(ctx, "gone@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
