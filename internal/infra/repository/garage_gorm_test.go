package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/garage-booking/internal/domain/garage"
	"github.com/BruksfildServices01/garage-booking/internal/testutil"
)

func TestGarageListAndGet(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	ids := NewIdentityGormRepository(db)
	repo := NewGarageGormRepository(db)

	empty, err := repo.ListGarages(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	u1, g1 := newOwner("one@example.com")
	u2, g2 := newOwner("two@example.com")
	g2.GarageName = "Speedy Motors"
	require.NoError(t, ids.CreateOwner(ctx, u1, g1))
	require.NoError(t, ids.CreateOwner(ctx, u2, g2))

	all, err := repo.ListGarages(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, g1.ID, all[0].ID)

	got, err := repo.GetGarage(ctx, g2.ID)
	require.NoError(t, err)
	assert.Equal(t, "Speedy Motors", got.GarageName)
	assert.Equal(t, u2.ID, got.OwnerID)

	_, err = repo.GetGarage(ctx, 999)
	assert.ErrorIs(t, err, garage.ErrGarageNotFound)
}
