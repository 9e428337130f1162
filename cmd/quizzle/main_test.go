package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
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
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestScopeFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    ScopeFlag
		wantErr bool
	}{
		{
			name:  "mine",
			value: "mine",
			want:  ScopeMine,
		},
		{
			name:  "public",
			value: "public",
			want:  ScopePublic,
		},
		{
			name:    "invalid value",
			value:   "everyone",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag ScopeFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid value")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestScopeFlag_String(t *testing.T) {
	var nilFlag *ScopeFlag
	assert.Equal(t, "", nilFlag.String())

	flag := ScopePublic
	assert.Equal(t, "public", flag.String())
	assert.Equal(t, "ScopeFlag", flag.Type())
}

func TestNewDashboardCommand(t *testing.T) {
	cmd := newDashboardCommand()

	assert.Equal(t, "dashboard", cmd.Use)
	scope := cmd.Flags().Lookup("scope")
	if assert.NotNil(t, scope) {
		assert.Equal(t, "mine", scope.DefValue)
	}
	assert.Error(t, cmd.Flags().Set("scope", "everyone"))
}

func TestNewQuizCommand(t *testing.T) {
	cmd := newQuizCommand()

	assert.Equal(t, "quiz", cmd.Use)
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"take", "show", "create", "edit", "delete", "import", "export"}, names)

	export, _, err := cmd.Find([]string{"export"})
	assert.NoError(t, err)
	assert.NotNil(t, export.Flags().Lookup("pdf"))
	assert.NotNil(t, export.Flags().Lookup("output"))
}
