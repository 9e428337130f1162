package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quizzle-app/quizzle/internal/auth"
	"github.com/quizzle-app/quizzle/internal/config"
	mock_store "github.com/quizzle-app/quizzle/internal/mocks/store"
	"github.com/quizzle-app/quizzle/internal/quiz"
	"github.com/quizzle-app/quizzle/internal/testutil"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, slog.Default().Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewMigrateCommand(t *testing.T) {
	cmd := newMigrateCommand()

	assert.Equal(t, "migrate", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
		assert.NotNil(t, sub.RunE)
	}
	assert.ElementsMatch(t, []string{"up", "down"}, names)
}

func TestTokenCommand(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		args    []string
		wantErr string
		wantExp bool
	}{
		{
			name:    "default lifetime",
			secret:  "test-secret",
			args:    []string{"alice@example.com"},
			wantExp: true,
		},
		{
			name:   "no expiry",
			secret: "test-secret",
			args:   []string{"alice@example.com", "--ttl", "0"},
		},
		{
			name:    "missing secret",
			args:    []string{"alice@example.com"},
			wantErr: "QUIZZLE_JWT_SECRET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("QUIZZLE_JWT_SECRET", tt.secret)
			oldConfigFile := configFile
			configFile = testutil.SetupTestConfig(t, t.TempDir(), "http://localhost:8000")
			defer func() { configFile = oldConfigFile }()

			cmd := newTokenCommand()
			var stdout bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			manager, err := auth.NewTokenManager(tt.secret)
			require.NoError(t, err)
			claims, err := manager.Parse(strings.TrimSpace(stdout.String()))
			require.NoError(t, err)
			assert.Equal(t, "alice@example.com", claims.Email)
			assert.Equal(t, tt.wantExp, claims.ExpiresAt != nil)
			if tt.wantExp {
				assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
			}
		})
	}
}

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	quizStore := mock_store.NewMockStore(ctrl)
	quizStore.EXPECT().ListPublicQuizzes(gomock.Any()).Return([]quiz.Quiz{
		{ID: "8f6b2c1e-3d4a-4e5f-9a0b-1c2d3e4f5a6b", Title: "Capitals", IsPublic: true},
	}, nil)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Address:        "127.0.0.1:0",
			AllowedOrigins: []string{"http://localhost:5173"},
			PreviewLimit:   10,
		},
	}
	httpServer, err := newHTTPServer(cfg, quizStore, nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", httpServer.Addr)

	recorder := httptest.NewRecorder()
	httpServer.Handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/get_public_quizzes", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Success       bool        `json:"success"`
		PublicQuizzes []quiz.Quiz `json:"public_quizzes"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.PublicQuizzes, 1)
	assert.Equal(t, "Capitals", body.PublicQuizzes[0].Title)
}

func TestServe_StopsWithContext(t *testing.T) {
	httpServer := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, serve(ctx, httpServer))
}
