package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:          "http://localhost:8000",
			TimeoutSeconds:   10,
			MaxRetryAttempts: 3,
		},
		Server: ServerConfig{
			Address:        ":8000",
			AllowedOrigins: []string{"http://localhost:5173"},
			PreviewLimit:   10,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "quizzle",
			Username: "quizzle",
		},
		Redis: RedisConfig{
			TTLSeconds: 300,
		},
		Outputs: OutputsConfig{
			ExportDirectory: "exports",
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `api:
  base_url: https://quizzle.example.com
  timeout_seconds: 5
  max_retry_attempts: 1
server:
  address: ":9000"
  allowed_origins:
    - https://quizzle.example.com
  preview_limit: 3
database:
  host: db
  port: 3307
outputs:
  export_directory: custom/exports
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.API = APIConfig{BaseURL: "https://quizzle.example.com", TimeoutSeconds: 5, MaxRetryAttempts: 1}
				cfg.Server = ServerConfig{Address: ":9000", AllowedOrigins: []string{"https://quizzle.example.com"}, PreviewLimit: 3}
				cfg.Database.Host = "db"
				cfg.Database.Port = 3307
				cfg.Outputs.ExportDirectory = "custom/exports"
				return cfg
			},
		},
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "explicit config file path",
			configContent: `api:
  base_url: http://backend:8000
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.API.BaseURL = "http://backend:8000"
				return cfg
			},
		},
		{
			name:          "secrets come from the environment",
			configContent: "",
			env: map[string]string{
				"QUIZZLE_TOKEN":       "token",
				"QUIZZLE_JWT_SECRET":  "secret",
				"QUIZZLE_DB_PASSWORD": "password",
				"QUIZZLE_REDIS_URL":   "redis://localhost:6379/0",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.API.Token = "token"
				cfg.Server.JWTSecret = "secret"
				cfg.Database.Password = "password"
				cfg.Redis.URL = "redis://localhost:6379/0"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `api:
  base_url: http://localhost
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "invalid values are reported with their keys",
			configContent: `api:
  base_url: not a url
server:
  preview_limit: 0
templates:
  quiz_template: /does/not/exist.md.go.tmpl
`,
			wantErrorContains: []string{
				"invalid configuration",
				"base_url must be a valid URL",
				"preview_limit must be 1 or greater",
				"templates.quiz_template must be an existing and readable file",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, env := range []string{"QUIZZLE_TOKEN", "QUIZZLE_JWT_SECRET", "QUIZZLE_DB_PASSWORD", "QUIZZLE_REDIS_URL"} {
				t.Setenv(env, tt.env[env])
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "quizzle.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}
