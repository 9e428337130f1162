package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizzle-app/quizzle/internal/config"
	"github.com/quizzle-app/quizzle/schemas"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "creates connection with valid config",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "quizzle",
				Username: "quizzle",
				Password: "secret",
			},
		},
		{
			name: "creates connection with pool settings",
			cfg: config.DatabaseConfig{
				Host:            "localhost",
				Port:            3306,
				Database:        "quizzle",
				Username:        "quizzle",
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, "mysql", got.DriverName())
		})
	}
}

func TestFormatDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want []string
	}{
		{
			name: "basic",
			cfg: config.DatabaseConfig{
				Host:     "db.example.com",
				Port:     3307,
				Database: "quizzle",
				Username: "admin",
				Password: "secret",
			},
			want: []string{"admin:secret@tcp(db.example.com:3307)/quizzle", "parseTime=true", "multiStatements=true", "clientFoundRows=true"},
		},
		{
			name: "tls and params",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "quizzle",
				Username: "quizzle",
				TLS:      true,
				Params:   map[string]string{"charset": "utf8mb4"},
			},
			want: []string{"tls=true", "charset=utf8mb4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDSN(tt.cfg)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestMigrationsAreEmbedded(t *testing.T) {
	names, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
	require.NoError(t, err)

	assert.Contains(t, names, "migrations/000001_create_quizzes.up.sql")
	assert.Contains(t, names, "migrations/000001_create_quizzes.down.sql")
	assert.Contains(t, names, "migrations/000002_create_questions.up.sql")
	assert.Contains(t, names, "migrations/000002_create_questions.down.sql")
}

func TestMigrate_FailsWithoutDatabase(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Host: "127.0.0.1", Port: 1, Database: "quizzle", Username: "quizzle"})
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, MigrateUp)
	assert.Error(t, err)
}
