package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"sublimation-calc/internal/config"
	"sublimation-calc/internal/engine"
	"sublimation-calc/pkg/redis"
)

type MockCache struct {
	data map[string][]byte
	gets int
	hits int
}

func newMockCache() *MockCache {
	return &MockCache{data: map[string][]byte{}}
}

func (m *MockCache) GetJSON(_ context.Context, key string, v any) error {
	m.gets++
	data, ok := m.data[key]
	if !ok {
		return fmt.Errorf("get %s: %w", key, redis.ErrNotFound)
	}
	m.hits++
	return json.Unmarshal(data, v)
}

func (m *MockCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}

func (m *MockCache) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func newTestStorage(t *testing.T, cache Cache) *Storage {
	t.Helper()

	db, err := sqlx.Open("sqlite", filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := New(db, "sqlite", cache, 0, zap.NewNop())
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestMigrate_Version(t *testing.T) {
	s := newTestStorage(t, nil)

	v, err := Version(context.Background(), s.db.DB, Dialect("sqlite"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestMigrate_Rollback(t *testing.T) {
	s := newTestStorage(t, nil)
	ctx := context.Background()

	require.NoError(t, RollbackMigration(ctx, s.db.DB, Dialect("sqlite"), zap.NewNop()))

	v, err := Version(ctx, s.db.DB, Dialect("sqlite"))
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = s.ListProfiles(ctx, "tg:1")
	assert.Error(t, err)
}

func TestSaveAndGetProfile(t *testing.T) {
	s := newTestStorage(t, nil)
	ctx := context.Background()

	in := engine.DefaultInputs()
	in.SellPriceUsdPerMeter = 5.25

	saved, err := s.SaveProfile(ctx, "tg:1", "  second shift ", in)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "second shift", saved.Name)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.GetProfile(ctx, "tg:1", "second shift")
	require.NoError(t, err)
	assert.Equal(t, in, got.Inputs)
	assert.Equal(t, saved.ID, got.ID)
}

func TestSaveProfile_Upserts(t *testing.T) {
	s := newTestStorage(t, nil)
	ctx := context.Background()

	first, err := s.SaveProfile(ctx, "tg:1", "base", engine.DefaultInputs())
	require.NoError(t, err)

	in := engine.DefaultInputs()
	in.FixedCosts.MonthlyRentUsd = 9000
	second, err := s.SaveProfile(ctx, "tg:1", "base", in)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 9000.0, second.Inputs.FixedCosts.MonthlyRentUsd)

	list, err := s.ListProfiles(ctx, "tg:1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSaveProfile_InvalidName(t *testing.T) {
	s := newTestStorage(t, nil)

	_, err := s.SaveProfile(context.Background(), "tg:1", "   ", engine.DefaultInputs())

	assert.True(t, errors.Is(err, ErrInvalidProfileName))
}

func TestListProfiles_ScopedToOwner(t *testing.T) {
	s := newTestStorage(t, nil)
	ctx := context.Background()

	for _, name := range []string{"b", "a"} {
		_, err := s.SaveProfile(ctx, "tg:1", name, engine.DefaultInputs())
		require.NoError(t, err)
	}
	_, err := s.SaveProfile(ctx, "tg:2", "c", engine.DefaultInputs())
	require.NoError(t, err)

	list, err := s.ListProfiles(ctx, "tg:1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, "b", list[1].Name)

	empty, err := s.ListProfiles(ctx, "tg:3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteProfile(t *testing.T) {
	s := newTestStorage(t, nil)
	ctx := context.Background()

	_, err := s.SaveProfile(ctx, "tg:1", "base", engine.DefaultInputs())
	require.NoError(t, err)

	require.NoError(t, s.DeleteProfile(ctx, "tg:1", "base"))

	_, err = s.GetProfile(ctx, "tg:1", "base")
	assert.True(t, errors.Is(err, ErrProfileNotFound))

	err = s.DeleteProfile(ctx, "tg:1", "base")
	assert.True(t, errors.Is(err, ErrProfileNotFound))
}

func TestGetProfile_ReadThroughCache(t *testing.T) {
	cache := newMockCache()
	s := newTestStorage(t, cache)
	ctx := context.Background()

	_, err := s.SaveProfile(ctx, "tg:1", "base", engine.DefaultInputs())
	require.NoError(t, err)

	_, err = s.GetProfile(ctx, "tg:1", "base")
	require.NoError(t, err)
	assert.Equal(t, 0, cache.hits)
	assert.Contains(t, cache.data, "profile:tg:1:base")

	got, err := s.GetProfile(ctx, "tg:1", "base")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, engine.DefaultInputs(), got.Inputs)

	in := engine.DefaultInputs()
	in.SellPriceUsdPerMeter = 6
	_, err = s.SaveProfile(ctx, "tg:1", "base", in)
	require.NoError(t, err)
	assert.NotContains(t, cache.data, "profile:tg:1:base")

	got, err = s.GetProfile(ctx, "tg:1", "base")
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.Inputs.SellPriceUsdPerMeter)
}

func TestDataSourceName(t *testing.T) {
	_, err := dataSourceName(configDatabase("mysql"))
	assert.Error(t, err)

	dsn, err := dataSourceName(configDatabase("postgres"))
	require.NoError(t, err)
	assert.Contains(t, dsn, "sslmode=disable")
}

func configDatabase(driver string) config.Database {
	return config.Database{
		Driver:  driver,
		Host:    "localhost",
		Port:    5432,
		User:    "calc",
		Name:    "sublimation",
		SSLMode: "disable",
	}
}
