package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctorsportal/doctors-api/internal/models"
	"github.com/doctorsportal/doctors-api/internal/store"
	"github.com/doctorsportal/doctors-api/internal/utils"
)

type failingMinter struct{}

func (failingMinter) Issue(string) (string, error) { return "", errors.New("no secret") }

func TestResolve(t *testing.T) {
	existing := &models.User{UID: "u1", Role: models.RoleAdmin, Name: "Old"}

	t.Run("existing record is written back unchanged", func(t *testing.T) {
		got := Resolve("u1", existing, &models.User{Role: models.RoleUser, Name: "New"})
		assert.Equal(t, *existing, *got)
	})

	t.Run("new record without role becomes user", func(t *testing.T) {
		got := Resolve("u2", nil, &models.User{Name: "Ann"})
		assert.Equal(t, "u2", got.UID)
		assert.Equal(t, models.RoleUser, got.Role)
		assert.Equal(t, "Ann", got.Name)
	})

	t.Run("new record keeps given role", func(t *testing.T) {
		got := Resolve("u3", nil, &models.User{Role: models.RoleAdmin})
		assert.Equal(t, models.RoleAdmin, got.Role)
	})

	t.Run("path uid wins over payload uid", func(t *testing.T) {
		got := Resolve("u4", nil, &models.User{UID: "other"})
		assert.Equal(t, "u4", got.UID)
	})
}

func TestUserService_UpsertKeepsFirstRecordAndIssuesTokens(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	issuer := utils.NewTokenIssuer("test-secret", 12*time.Hour)
	svc := NewUserService(mem, issuer)

	first, err := svc.Upsert(ctx, "u1", &models.User{Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Result.UpsertedCount)

	second, err := svc.Upsert(ctx, "u1", &models.User{Name: "Bob", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Result.MatchedCount)
	assert.Equal(t, int64(0), second.Result.ModifiedCount)

	stored, err := mem.FindUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Ann", stored.Name)
	assert.Equal(t, "ann@example.com", stored.Email)
	assert.Equal(t, models.RoleUser, stored.Role)

	assert.NotEqual(t, first.Token, second.Token)
	for _, tok := range []string{first.Token, second.Token} {
		claims, err := issuer.Validate(tok)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UID)
	}
}

func TestUserService_UpsertFailsWhenTokenCannotBeIssued(t *testing.T) {
	svc := NewUserService(store.NewMemory(), failingMinter{})
	_, err := svc.Upsert(context.Background(), "u1", &models.User{})
	assert.Error(t, err)
}

func TestUserService_ListNeverNil(t *testing.T) {
	got, err := NewUserService(store.NewMemory(), failingMinter{}).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestUserService_UpsertRoleCheckedOnlyForNewRecords(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	svc := NewUserService(mem, utils.NewTokenIssuer("test-secret", time.Hour))

	_, err := svc.Upsert(ctx, "u1", &models.User{Role: "doctor"})
	assert.ErrorIs(t, err, ErrInvalidRole)
	missing, err := mem.FindUser(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = svc.Upsert(ctx, "u1", &models.User{Name: "first"})
	require.NoError(t, err)

	res, err := svc.Upsert(ctx, "u1", &models.User{Name: "second", Role: "doctor"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	stored, err := mem.FindUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "first", stored.Name)
	assert.Equal(t, models.RoleUser, stored.Role)
}
