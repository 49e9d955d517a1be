package openai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fripon-labs/fripon-cli/internal/core/domain"
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driven"
)

// imageFixture builds a test image from a string payload.
func imageFixture(data, mime string) domain.Image {
	return domain.Image{Data: []byte(data), MIMEType: mime}
}

func TestService_ImplementsInterface(t *testing.T) {
	var _ driven.VisionService = (*Service)(nil)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestNew_Defaults(t *testing.T) {
	svc, err := New(Config{APIKey: "sk-test"})

	require.NoError(t, err)
	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.NotNil(t, svc.limiter)
}

func TestNew_CustomModel(t *testing.T) {
	svc, err := New(Config{APIKey: "sk-test", Model: "gpt-4o"})

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", svc.ModelName())
}

func TestAnalyze_NoImages(t *testing.T) {
	svc, err := New(Config{APIKey: "sk-test"})
	require.NoError(t, err)

	_, err = svc.Analyze(context.Background(), nil, "prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoImages)
}

func TestClose(t *testing.T) {
	svc, err := New(Config{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.NoError(t, svc.Close())
}
