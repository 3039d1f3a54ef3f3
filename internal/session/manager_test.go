package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sublimation-calc/internal/engine"
	"sublimation-calc/pkg/redis"
)

type MockStore struct {
	data     map[string][]byte
	ForceErr bool
}

func newMockStore() *MockStore {
	return &MockStore{data: map[string][]byte{}}
}

func (m *MockStore) GetJSON(_ context.Context, key string, v any) error {
	if m.ForceErr {
		return errors.New("connection refused")
	}
	data, ok := m.data[key]
	if !ok {
		return fmt.Errorf("get %s: %w", key, redis.ErrNotFound)
	}
	return json.Unmarshal(data, v)
}

func (m *MockStore) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}

func (m *MockStore) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func newManager(store Store) *Manager {
	return New(store, Defaults{Inputs: engine.DefaultInputs(), Language: "pt", SensitivityPercent: 10}, 0)
}

func TestManager_GetMissReturnsDefaults(t *testing.T) {
	m := newManager(newMockStore())

	d, err := m.Get(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, engine.DefaultInputs(), d.Inputs)
	assert.Equal(t, "pt", d.Language)
	assert.Equal(t, 10.0, d.SensitivityPercent)
	assert.Nil(t, d.Scenario)
}

func TestManager_GetStoreError(t *testing.T) {
	m := newManager(&MockStore{ForceErr: true})

	_, err := m.Get(context.Background(), 42)

	assert.Error(t, err)
}

func TestManager_SetFieldPersists(t *testing.T) {
	store := newMockStore()
	m := newManager(store)
	ctx := context.Background()

	_, err := m.SetField(ctx, 1, "sell_price", 5)
	require.NoError(t, err)

	d, err := m.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d.Inputs.SellPriceUsdPerMeter)

	other, err := m.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, other.Inputs.SellPriceUsdPerMeter)
}

func TestManager_SetFieldRejectsInvalidSchedule(t *testing.T) {
	store := newMockStore()
	m := newManager(store)
	ctx := context.Background()

	_, err := m.SetField(ctx, 1, "downtime", 500)

	var verrs engine.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Empty(t, store.data)
}

func TestManager_Scenario(t *testing.T) {
	m := newManager(newMockStore())
	ctx := context.Background()

	d, err := m.SetScenarioField(ctx, 1, "shifts", 2)
	require.NoError(t, err)
	require.NotNil(t, d.Scenario)
	assert.Equal(t, 2.0, d.Scenario.Schedule.ShiftsPerDay)
	assert.Equal(t, 1.0, d.Inputs.Production.ShiftsPerDay)

	_, err = m.SetScenarioField(ctx, 1, "sell_price", 3)
	assert.Error(t, err)

	d, err = m.ResetScenario(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, d.Scenario)
	assert.Equal(t, engine.ScenarioFromInputs(d.Inputs), d.ScenarioOrBase())
}

func TestManager_ResetKeepsLanguage(t *testing.T) {
	m := newManager(newMockStore())
	ctx := context.Background()

	_, err := m.SetLanguage(ctx, 1, "es")
	require.NoError(t, err)
	_, err = m.SetField(ctx, 1, "rent", 100)
	require.NoError(t, err)

	d, err := m.Reset(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "es", d.Language)
	assert.Equal(t, 8000.0, d.Inputs.FixedCosts.MonthlyRentUsd)
}

func TestManager_SensitivityPercentRange(t *testing.T) {
	m := newManager(newMockStore())
	ctx := context.Background()

	d, err := m.SetSensitivityPercent(ctx, 1, -20)
	require.NoError(t, err)
	assert.Equal(t, -20.0, d.SensitivityPercent)

	_, err = m.SetSensitivityPercent(ctx, 1, 80)
	assert.Error(t, err)
}

func TestManager_Clear(t *testing.T) {
	store := newMockStore()
	m := newManager(store)
	ctx := context.Background()

	_, err := m.SetLanguage(ctx, 42, "es")
	require.NoError(t, err)
	require.Len(t, store.data, 1)

	require.NoError(t, m.Clear(ctx, 42))
	assert.Empty(t, store.data)

	d, err := m.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "pt", d.Language)
}
