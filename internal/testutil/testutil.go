// Package testutil provides shared test helpers for creating config files and quiz fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleQuizYAML is a quiz definition with two valid questions.
const SampleQuizYAML = `title: Capitals
description: European capitals
is_public: true
questions:
  - question: Capital of France?
    answers: [Paris, Lyon]
    correct_answer: Paris
    explanation: Paris has been the capital since 987.
  - question: Capital of Italy?
    answers: [Milan, Rome]
    correct_answer: Rome
`

// SetupTestConfig creates a client config pointing at apiBaseURL with retries disabled.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, apiBaseURL string) string {
	t.Helper()

	exportDir := filepath.Join(tmpDir, "exports")
	require.NoError(t, os.MkdirAll(exportDir, 0755))

	configContent := fmt.Sprintf(`api:
  base_url: %s
  token: test-token
  timeout_seconds: 5
  max_retry_attempts: 0
outputs:
  export_directory: %s
`,
		apiBaseURL,
		exportDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteQuizFile writes a YAML quiz definition into a temporary directory and returns its path.
func WriteQuizFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quiz.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
