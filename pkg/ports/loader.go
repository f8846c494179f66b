package ports

import "github.com/CakeVR/dialogic/pkg/domain"

// ProfileLoader defines how the engine retrieves character profiles.
// The engine never touches the filesystem itself; hosts hand it bytes or
// decoded profiles through this port.
type ProfileLoader interface {
	// GetProfile retrieves a character's profile by name.
	// Returns domain.ErrProfileNotFound if the character is unknown.
	GetProfile(character string) (*domain.Profile, error)

	// ListCharacters returns the names of all available characters.
	ListCharacters() ([]string, error)
}
