package memory

import (
	"fmt"
	"sort"

	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/schema"
)

// Loader implements ports.ProfileLoader using an in-memory map.
type Loader struct {
	profiles map[string]*domain.Profile
}

// NewLoader creates a Loader from raw YAML documents keyed by character name.
func NewLoader(data map[string]string) (*Loader, error) {
	profiles := make(map[string]*domain.Profile, len(data))
	for character, raw := range data {
		profile, err := schema.DecodeProfile([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to load profile %s: %w", character, err)
		}
		profiles[character] = profile
	}
	return &Loader{profiles: profiles}, nil
}

// NewFromProfiles creates a Loader from domain objects.
// This skips serialization, improving DX for tests.
func NewFromProfiles(profiles ...*domain.Profile) (*Loader, error) {
	data := make(map[string]*domain.Profile, len(profiles))
	for _, p := range profiles {
		if err := schema.ValidateProfile(p); err != nil {
			return nil, fmt.Errorf("invalid profile %s: %w", p.Character, err)
		}
		data[p.Character] = p
	}
	return &Loader{profiles: data}, nil
}

// GetProfile retrieves a character's profile by name.
func (l *Loader) GetProfile(character string) (*domain.Profile, error) {
	profile, ok := l.profiles[character]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, character)
	}
	return profile, nil
}

// ListCharacters returns all available character names.
func (l *Loader) ListCharacters() ([]string, error) {
	names := make([]string, 0, len(l.profiles))
	for name := range l.profiles {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}
