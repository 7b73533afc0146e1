package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnvFile(t *testing.T) {
	path := writeFile(t, ".env", `# credentials
BLUESKY_HANDLE=alice.bsky.social
BLUESKY_APP_PASSWORD=abc#def
QUOTED="hello world"
`)

	env, err := ReadEnvFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"BLUESKY_HANDLE", "BLUESKY_APP_PASSWORD", "QUOTED"}, env.Keys())
	v, ok := env.Get("BLUESKY_APP_PASSWORD")
	assert.True(t, ok)
	assert.Equal(t, "abc#def", v)
	v, _ = env.Get("QUOTED")
	assert.Equal(t, "hello world", v)
}

func TestReadEnvFileExportAndBackslash(t *testing.T) {
	path := writeFile(t, ".env", "export BLUESKY_HANDLE=alice\nBLUESKY_APP_PASSWORD=ab\\\nOTHER=x\nexporter=y\n")

	env, err := ReadEnvFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"BLUESKY_HANDLE", "BLUESKY_APP_PASSWORD", "OTHER", "exporter"}, env.Keys())
	v, _ := env.Get("BLUESKY_HANDLE")
	assert.Equal(t, "alice", v)
	v, _ = env.Get("BLUESKY_APP_PASSWORD")
	assert.Equal(t, "ab\\", v)
	v, _ = env.Get("OTHER")
	assert.Equal(t, "x", v)
}

func TestLoadEnvFileExportsPrefixedKeys(t *testing.T) {
	path := writeFile(t, ".env", "export BSKYCLI_TEST_EXPORTED=from-file\n")
	t.Setenv("BSKYCLI_TEST_EXPORTED", "")
	require.NoError(t, os.Unsetenv("BSKYCLI_TEST_EXPORTED"))

	exported, err := LoadEnvFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"BSKYCLI_TEST_EXPORTED"}, exported)
	assert.Equal(t, "from-file", os.Getenv("BSKYCLI_TEST_EXPORTED"))
}

func TestLoadEnvFileKeepsExistingValues(t *testing.T) {
	path := writeFile(t, ".env", "BSKYCLI_TEST_SET=from-file\nBSKYCLI_TEST_UNSET=from-file\n")

	t.Setenv("BSKYCLI_TEST_SET", "from-env")
	t.Setenv("BSKYCLI_TEST_UNSET", "")
	require.NoError(t, os.Unsetenv("BSKYCLI_TEST_UNSET"))

	exported, err := LoadEnvFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"BSKYCLI_TEST_UNSET"}, exported)
	assert.Equal(t, "from-env", os.Getenv("BSKYCLI_TEST_SET"))
	assert.Equal(t, "from-file", os.Getenv("BSKYCLI_TEST_UNSET"))
}

func TestLoadEnvFileMissing(t *testing.T) {
	_, err := LoadEnvFile("/nonexistent/.env")
	assert.Error(t, err)
}
