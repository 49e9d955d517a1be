package composers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fripon-labs/fripon-cli/internal/composers/denim"
	"github.com/fripon-labs/fripon-cli/internal/core/domain"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(denim.New()))

	c, ok := r.Get(domain.ProfileJeanLevis)
	require.True(t, ok)
	assert.Equal(t, domain.ProfileJeanLevis, c.Profile())

	_, ok = r.Get("inconnu")
	assert.False(t, ok)
}

func TestRegistry_DuplicateProfile(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(denim.New()))
	err := r.Register(denim.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProfileExists)
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, RegisterDefaults(r))

	profiles := r.Profiles()
	assert.Equal(t, []domain.ProfileName{
		domain.ProfileJeanLevis,
		domain.ProfilePullTommy,
	}, profiles)
}
