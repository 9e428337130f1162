package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, "http://127.0.0.1:8000")

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "base_url: http://127.0.0.1:8000")
	assert.Contains(t, string(content), "max_retry_attempts: 0")

	info, err := os.Stat(filepath.Join(tmpDir, "exports"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteQuizFile(t *testing.T) {
	path := WriteQuizFile(t, SampleQuizYAML)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var sample struct {
		Title     string `yaml:"title"`
		Questions []struct {
			Answers       []string `yaml:"answers"`
			CorrectAnswer string   `yaml:"correct_answer"`
		} `yaml:"questions"`
	}
	require.NoError(t, yaml.Unmarshal(content, &sample))
	assert.Equal(t, "Capitals", sample.Title)
	require.Len(t, sample.Questions, 2)
	for _, question := range sample.Questions {
		assert.Contains(t, question.Answers, question.CorrectAnswer)
	}
}
