package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"sublimation-calc/internal/engine"
)

const (
	defaultCacheTTL   = 24 * time.Hour
	maxProfileNameLen = 64
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidProfileName = errors.New("profile name must be 1 to 64 characters")
)

// Profile is a named input preset. Results are always recomputed from Inputs.
type Profile struct {
	ID        int64         `json:"id"`
	OwnerID   string        `json:"owner_id"`
	Name      string        `json:"name"`
	Inputs    engine.Inputs `json:"inputs"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type profileRow struct {
	ID         int64     `db:"id"`
	OwnerID    string    `db:"owner_id"`
	Name       string    `db:"name"`
	InputsJSON string    `db:"inputs_json"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r profileRow) profile() (*Profile, error) {
	p := &Profile{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(r.InputsJSON), &p.Inputs); err != nil {
		return nil, fmt.Errorf("decode inputs of profile %d: %w", r.ID, err)
	}
	return p, nil
}

// NormalizeProfileName trims the name and checks its length.
func NormalizeProfileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxProfileNameLen {
		return "", ErrInvalidProfileName
	}
	return name, nil
}

// SaveProfile creates or replaces the owner's profile with the given name.
func (s *Storage) SaveProfile(ctx context.Context, ownerID, name string, in engine.Inputs) (*Profile, error) {
	const operation = "storage.SaveProfile"

	name, err := NormalizeProfileName(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to encode inputs: %w", operation, err)
	}

	now := time.Now().UTC()
	query := s.db.Rebind(`
        INSERT INTO profiles (owner_id, name, inputs_json, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT (owner_id, name)
        DO UPDATE SET inputs_json = excluded.inputs_json, updated_at = excluded.updated_at
    `)
	if _, err := s.db.ExecContext(ctx, query, ownerID, name, string(data), now, now); err != nil {
		return nil, fmt.Errorf("%s: failed to save profile: %w", operation, err)
	}

	s.invalidate(ctx, ownerID, name)

	p, err := s.selectProfile(ctx, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return p, nil
}

// GetProfile reads through the cache; misses and cache failures fall back to SQL.
func (s *Storage) GetProfile(ctx context.Context, ownerID, name string) (*Profile, error) {
	const operation = "storage.GetProfile"

	key := cacheKey(ownerID, name)

	if s.cache != nil {
		var cached Profile
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	p, err := s.selectProfile(ctx, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, p, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache profile", zap.String("key", key), zap.Error(err))
		}
	}

	return p, nil
}

func (s *Storage) ListProfiles(ctx context.Context, ownerID string) ([]Profile, error) {
	const operation = "storage.ListProfiles"

	query := s.db.Rebind(`
        SELECT id, owner_id, name, inputs_json, created_at, updated_at
        FROM profiles
        WHERE owner_id = ?
        ORDER BY name
    `)

	var rows []profileRow
	if err := s.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("%s: failed to list profiles: %w", operation, err)
	}

	profiles := make([]Profile, 0, len(rows))
	for _, r := range rows {
		p, err := r.profile()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", operation, err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, ownerID, name string) error {
	const operation = "storage.DeleteProfile"

	query := s.db.Rebind(`DELETE FROM profiles WHERE owner_id = ? AND name = ?`)

	res, err := s.db.ExecContext(ctx, query, ownerID, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("%s: failed to delete profile: %w", operation, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to read affected rows: %w", operation, err)
	}

	s.invalidate(ctx, ownerID, name)

	if n == 0 {
		return fmt.Errorf("%s: %w", operation, ErrProfileNotFound)
	}
	return nil
}

func (s *Storage) selectProfile(ctx context.Context, ownerID, name string) (*Profile, error) {
	query := s.db.Rebind(`
        SELECT id, owner_id, name, inputs_json, created_at, updated_at
        FROM profiles
        WHERE owner_id = ? AND name = ?
    `)

	var row profileRow
	if err := s.db.GetContext(ctx, &row, query, ownerID, strings.TrimSpace(name)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return row.profile()
}

func (s *Storage) invalidate(ctx context.Context, ownerID, name string) {
	if s.cache == nil {
		return
	}
	key := cacheKey(ownerID, name)
	if err := s.cache.Del(ctx, key); err != nil {
		s.logger.Warn("Failed to invalidate profile cache", zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(ownerID, name string) string {
	return fmt.Sprintf("profile:%s:%s", ownerID, strings.TrimSpace(name))
}
