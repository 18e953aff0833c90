package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Environment mutation via t.Setenv keeps these tests serial; no
// t.Parallel here.

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Reading.LetterTablePath)
	assert.Empty(t, cfg.Reading.KnowledgeBasePath)
	assert.Empty(t, cfg.Reading.OverviewTemplatePath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TIKKUN_LOG_LEVEL", "debug")
	t.Setenv("TIKKUN_READING_KNOWLEDGE_BASE_PATH", "/etc/tikkun/archetypes.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/etc/tikkun/archetypes.yaml", cfg.Reading.KnowledgeBasePath)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("TIKKUN_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}
