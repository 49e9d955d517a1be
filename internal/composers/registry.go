package composers

import (
	"fmt"
	"sort"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driven"
)

// Registry maps analysis profiles to their composers.
type Registry struct {
	byProfile map[domain.ProfileName]driven.Composer
}

// NewRegistry creates an empty composer registry.
func NewRegistry() *Registry {
	return &Registry{
		byProfile: make(map[domain.ProfileName]driven.Composer),
	}
}

// Register adds a composer to the registry.
// Returns domain.ErrProfileExists if the profile is already taken.
func (r *Registry) Register(c driven.Composer) error {
	profile := c.Profile()
	if _, ok := r.byProfile[profile]; ok {
		return fmt.Errorf("%w: %s", domain.ErrProfileExists, profile)
	}
	r.byProfile[profile] = c
	return nil
}

// Get returns the composer for a profile.
func (r *Registry) Get(profile domain.ProfileName) (driven.Composer, bool) {
	c, ok := r.byProfile[profile]
	return c, ok
}

// Profiles returns the registered profile names in sorted order.
func (r *Registry) Profiles() []domain.ProfileName {
	profiles := make([]domain.ProfileName, 0, len(r.byProfile))
	for profile := range r.byProfile {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i] < profiles[j] })
	return profiles
}
