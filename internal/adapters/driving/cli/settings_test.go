package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "long key",
			input:    "gsk_1234567890abcdef",
			expected: "gsk_...cdef",
		},
		{
			name:     "empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskAPIKey(tt.input))
		})
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	originalConfigDir := configDir
	configDir = t.TempDir()
	defer func() { configDir = originalConfigDir }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSettingsShow(t *testing.T) {
	out, err := runCommand(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Embedding]")
	assert.Contains(t, out, "[LLM]")
	assert.Contains(t, out, "[Pipeline]")
	assert.Contains(t, out, "Chunk size: 1000")
}

func TestSettingsSet(t *testing.T) {
	out, err := runCommand(t, "settings", "set", "llm_provider", "gemini")

	require.NoError(t, err)
	assert.Contains(t, out, "Set llm_provider")
}

func TestSettingsSetIntKey(t *testing.T) {
	_, err := runCommand(t, "settings", "set", "chunk_size", "500")
	require.NoError(t, err)

	_, err = runCommand(t, "settings", "set", "chunk_size", "lots")
	assert.Error(t, err)
}

func TestSettingsSetWrongArgCount(t *testing.T) {
	_, err := runCommand(t, "settings", "set", "only_key")
	assert.Error(t, err)
}
