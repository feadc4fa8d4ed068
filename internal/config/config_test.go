package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Embedding.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.Embedding.BaseURL)
	assert.Equal(t, "all-minilm", cfg.Embedding.Model)
	assert.Equal(t, 384, cfg.Embedding.Dimension)
	assert.Equal(t, 500, cfg.RAG.ChunkSize)
	assert.Equal(t, 100, cfg.RAG.ChunkOverlap)
	assert.Equal(t, 50, cfg.RAG.MinChunkSize)
	assert.Equal(t, 50, cfg.Upload.BatchSize)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  url: postgres://db.example.supabase.co:5432/postgres
  key: service-key
  debug: true
rag:
  chunk_size: 800
  chunk_overlap: 200
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://db.example.supabase.co:5432/postgres", cfg.Database.URL)
	assert.Equal(t, "service-key", cfg.Database.Key)
	assert.True(t, cfg.Database.Debug)
	assert.Equal(t, 800, cfg.RAG.ChunkSize)
	assert.Equal(t, 200, cfg.RAG.ChunkOverlap)
	// Unset fields still get defaults.
	assert.Equal(t, 50, cfg.RAG.MinChunkSize)
	assert.Equal(t, "ollama", cfg.Embedding.Provider)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "postgres://env.supabase.co:5432/postgres")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "env-service-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  url: postgres://file.supabase.co:5432/postgres
  key: file-key
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env.supabase.co:5432/postgres", cfg.Database.URL)
	assert.Equal(t, "env-service-key", cfg.Database.Key)
}

func TestLoadConfig_ServiceKeyOutranksAnonKey(t *testing.T) {
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "anon-key")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "service-key", cfg.Database.Key)
}

func TestLoadConfig_AnonKeyFallback(t *testing.T) {
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "anon-key")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "anon-key", cfg.Database.Key)
}

func TestValidateRemote(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.ValidateRemote())

	cfg.Database.URL = "postgres://db.example.supabase.co:5432/postgres"
	assert.Error(t, cfg.ValidateRemote())

	cfg.Database.Key = "key"
	assert.NoError(t, cfg.ValidateRemote())
}
