package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sublimation-calc/internal/engine"
	"sublimation-calc/pkg/redis"
)

const DefaultTTL = 30 * 24 * time.Hour

// Draft is the working state of one chat: the inputs being edited, an optional
// alternate scenario and display preferences.
type Draft struct {
	Inputs             engine.Inputs          `json:"inputs"`
	Scenario           *engine.ScenarioInputs `json:"scenario,omitempty"`
	Language           string                 `json:"language"`
	SensitivityPercent float64                `json:"sensitivity_percent"`
}

// ScenarioOrBase returns the scenario, or one identical to the baseline if
// none has been set.
func (d Draft) ScenarioOrBase() engine.ScenarioInputs {
	if d.Scenario != nil {
		return *d.Scenario
	}
	return engine.ScenarioFromInputs(d.Inputs)
}

type Defaults struct {
	Inputs             engine.Inputs
	Language           string
	SensitivityPercent float64
}

type Manager struct {
	store    Store
	defaults Defaults
	ttl      time.Duration
}

func New(store Store, defaults Defaults, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: store, defaults: defaults, ttl: ttl}
}

func (m *Manager) fresh() *Draft {
	return &Draft{
		Inputs:             m.defaults.Inputs,
		Language:           m.defaults.Language,
		SensitivityPercent: m.defaults.SensitivityPercent,
	}
}

// Get returns the chat's draft, or a default one if nothing is stored.
func (m *Manager) Get(ctx context.Context, chatID int64) (*Draft, error) {
	var d Draft
	err := m.store.GetJSON(ctx, key(chatID), &d)
	if errors.Is(err, redis.ErrNotFound) {
		return m.fresh(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.GetJSON failed: %w", err)
	}
	return &d, nil
}

func (m *Manager) Save(ctx context.Context, chatID int64, d *Draft) error {
	if err := m.store.SetJSON(ctx, key(chatID), d, m.ttl); err != nil {
		return fmt.Errorf("store.SetJSON failed: %w", err)
	}
	return nil
}

// update loads the draft, applies fn and stores the result unless fn fails.
func (m *Manager) update(ctx context.Context, chatID int64, fn func(*Draft) error) (*Draft, error) {
	d, err := m.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	if err := m.Save(ctx, chatID, d); err != nil {
		return nil, err
	}
	return d, nil
}

// SetField changes one baseline input. Cross-field rules are checked against
// the resulting snapshot so the draft never holds an invalid schedule.
func (m *Manager) SetField(ctx context.Context, chatID int64, field string, value float64) (*Draft, error) {
	return m.update(ctx, chatID, func(d *Draft) error {
		in, err := engine.SetField(d.Inputs, field, value)
		if err != nil {
			return err
		}
		if err := engine.Validate(in); err != nil {
			return err
		}
		d.Inputs = in
		return nil
	})
}

func (m *Manager) SetScenarioField(ctx context.Context, chatID int64, field string, value float64) (*Draft, error) {
	return m.update(ctx, chatID, func(d *Draft) error {
		s, err := engine.SetScenarioField(d.ScenarioOrBase(), field, value)
		if err != nil {
			return err
		}
		if err := engine.ValidateScenario(s); err != nil {
			return err
		}
		d.Scenario = &s
		return nil
	})
}

func (m *Manager) ResetScenario(ctx context.Context, chatID int64) (*Draft, error) {
	return m.update(ctx, chatID, func(d *Draft) error {
		d.Scenario = nil
		return nil
	})
}

// SetInputs replaces the baseline, e.g. when a saved profile is loaded.
func (m *Manager) SetInputs(ctx context.Context, chatID int64, in engine.Inputs) (*Draft, error) {
	return m.update(ctx, chatID, func(d *Draft) error {
		if err := engine.Validate(in); err != nil {
			return err
		}
		d.Inputs = in
		d.Scenario = nil
		return nil
	})
}

func (m *Manager) SetLanguage(ctx context.Context, chatID int64, lang string) (*Draft, error) {
	return m.update(ctx, chatID, func(d *Draft) error {
		d.Language = lang
		return nil
	})
}

func (m *Manager) SetSensitivityPercent(ctx context.Context, chatID int64, percent float64) (*Draft, error) {
	return m.update(ctx, chatID, func(d *Draft) error {
		if err := engine.ValidateSensitivityPercent(percent); err != nil {
			return err
		}
		d.SensitivityPercent = percent
		return nil
	})
}

// Reset restores default inputs but keeps the chat's language.
func (m *Manager) Reset(ctx context.Context, chatID int64) (*Draft, error) {
	prev, err := m.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	d := m.fresh()
	d.Language = prev.Language
	if err := m.Save(ctx, chatID, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (m *Manager) Clear(ctx context.Context, chatID int64) error {
	return m.store.Del(ctx, key(chatID))
}

func key(chatID int64) string {
	return fmt.Sprintf("draft:%d", chatID)
}
