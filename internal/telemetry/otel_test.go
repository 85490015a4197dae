package telemetry

import (
	"context"
	"testing"

	"github.com/blaisecz/step-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExporter(t *testing.T) {
	t.Run("langfuse wins", func(t *testing.T) {
		exp, ok := ResolveExporter(&config.Config{
			LangfuseBaseURL:   "https://cloud.langfuse.com/",
			LangfusePublicKey: "pk",
			LangfuseSecretKey: "sk",
			OTLPEndpoint:      "http://collector:4318",
		})
		require.True(t, ok)
		assert.Equal(t, "https://cloud.langfuse.com/api/public/otel/v1/traces", exp.EndpointURL)
		// base64("pk:sk")
		assert.Equal(t, "Basic cGs6c2s=", exp.Headers["Authorization"])
	})

	t.Run("plain otlp endpoint", func(t *testing.T) {
		exp, ok := ResolveExporter(&config.Config{OTLPEndpoint: "http://collector:4318"})
		require.True(t, ok)
		assert.Equal(t, "http://collector:4318/v1/traces", exp.EndpointURL)
		assert.Empty(t, exp.Headers)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, ok := ResolveExporter(&config.Config{LangfusePublicKey: "pk"})
		assert.False(t, ok)
	})
}

func TestInitTracer_NoopWithoutExporter(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &config.Config{}, "step-tracker-api")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
