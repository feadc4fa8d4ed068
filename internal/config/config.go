package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	URL   string `yaml:"url"`
	Key   string `yaml:"key"`
	Debug bool   `yaml:"debug"`
}

type EmbeddingConfig struct {
	Provider  string `yaml:"provider"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	Dimension int    `yaml:"dimension"`
	BatchSize int    `yaml:"batch_size"`
}

type RAGConfig struct {
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
	MinChunkSize int `yaml:"min_chunk_size"`
}

type UploadConfig struct {
	BatchSize int `yaml:"batch_size"`
}

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	RAG       RAGConfig       `yaml:"rag"`
	Upload    UploadConfig    `yaml:"upload"`
}

// LoadConfig reads the YAML config file if present, then applies environment
// overrides and defaults. A missing config file is not an error: the
// Supabase credentials can come entirely from the environment.
func LoadConfig(path string) (*Config, error) {
	// .env.local wins over .env, matching the Next.js project layout the
	// corpus lives in. Both are optional.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("NEXT_PUBLIC_SUPABASE_URL"); v != "" {
		c.Database.URL = v
	}
	// The service role key outranks the anon key.
	if v := os.Getenv("SUPABASE_SERVICE_ROLE_KEY"); v != "" {
		c.Database.Key = v
	} else if v := os.Getenv("NEXT_PUBLIC_SUPABASE_ANON_KEY"); v != "" && c.Database.Key == "" {
		c.Database.Key = v
	}
}

func (c *Config) applyDefaults() {
	if c.Embedding.Provider == "" {
		c.Embedding.Provider = "ollama"
	}
	if c.Embedding.BaseURL == "" {
		c.Embedding.BaseURL = "http://localhost:11434"
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "all-minilm"
	}
	if c.Embedding.Dimension == 0 {
		c.Embedding.Dimension = 384
	}
	if c.Embedding.BatchSize == 0 {
		c.Embedding.BatchSize = 32
	}
	if c.RAG.ChunkSize == 0 {
		c.RAG.ChunkSize = 500
	}
	if c.RAG.ChunkOverlap == 0 {
		c.RAG.ChunkOverlap = 100
	}
	if c.RAG.MinChunkSize == 0 {
		c.RAG.MinChunkSize = 50
	}
	if c.Upload.BatchSize == 0 {
		c.Upload.BatchSize = 50
	}
}

// ValidateRemote checks that the Supabase credentials needed for an upload
// run are present. Dry runs and local runs do not call this.
func (c *Config) ValidateRemote() error {
	if c.Database.URL == "" || c.Database.Key == "" {
		return errors.New("supabase credentials not found: set NEXT_PUBLIC_SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY")
	}
	return nil
}
