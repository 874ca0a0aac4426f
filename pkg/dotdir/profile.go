package dotdir

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	profileFile = "profile.json"
)

// Profile is the locally cached cycle profile used by the flow command so
// the user does not have to repeat their cycle parameters on every run.
type Profile struct {
	// UserID ties locally generated sessions to a server-side user.
	UserID string `json:"user_id,omitempty"`

	// LastPeriodDate is the first day of the last period, YYYY-MM-DD.
	LastPeriodDate string `json:"last_period_date"`

	// CycleLength is the cycle length in days.
	CycleLength int `json:"cycle_length"`
}

// LoadProfile loads the cycle profile from a target .vinyasa/profile.json.
// Returns nil, nil if no profile exists.
// If overrideDir is non-empty, it is used instead of the default ~/.vinyasa/ location.
func (m *Manager) LoadProfile(overrideDir string) (*Profile, error) {
	dir, err := m.Target(overrideDir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, profileFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	profile := &Profile{}
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	return profile, nil
}

// SaveProfile persists the cycle profile to a target .vinyasa/profile.json.
// The file is written 0600: cycle data stays private to the user.
func (m *Manager) SaveProfile(profile *Profile, overrideDir string) error {
	if profile == nil {
		return errors.New("cannot save nil profile")
	}

	dir, err := m.Target(overrideDir)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}

	path := filepath.Join(dir, profileFile)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	return nil
}

// ClearProfile removes the profile file.
// If overrideDir is non-empty, it is used instead of the default ~/.vinyasa/ location.
// Returns nil if the file doesn't exist (already cleared).
func (m *Manager) ClearProfile(overrideDir string) error {
	dir, err := m.Target(overrideDir)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, profileFile)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("removing profile: %w", err)
	}

	return nil
}
