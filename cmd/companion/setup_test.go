package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		prev, ok := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if ok {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestInitEnv_RuntimeFileWins(t *testing.T) {
	unsetEnv(t, "COMPANION_TEST_A", "COMPANION_TEST_B")

	runtime := t.TempDir()
	work := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(runtime, ".env"), []byte("COMPANION_TEST_A=runtime\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(work, ".env"), []byte("COMPANION_TEST_A=work\nCOMPANION_TEST_B=work\n"), 0o600))
	t.Chdir(work)

	require.NoError(t, initEnv(context.Background(), runtime))

	assert.Equal(t, "runtime", os.Getenv("COMPANION_TEST_A"))
	assert.Equal(t, "work", os.Getenv("COMPANION_TEST_B"))
}

func TestInitEnv_MissingFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, initEnv(context.Background(), t.TempDir()))
}

func TestLoadConversation(t *testing.T) {
	sample, err := loadConversation("")
	require.NoError(t, err)
	assert.Len(t, sample, 32)

	_, err = loadConversation(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
