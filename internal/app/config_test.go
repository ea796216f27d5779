package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultsLoggingFields(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{})

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestNewConfig_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	age := 3.0
	cfg, err := NewConfig(Config{
		Animals:   []string{"cat"},
		Age:       &age,
		JSON:      true,
		NoColor:   true,
		LogLevel:  "debug",
		LogFormat: "json",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, cfg.Animals)
	assert.Equal(t, 3.0, *cfg.Age)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}
