package commandmanager

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelcutops/bskycli/logger"
)

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestRunLocal(t *testing.T) {
	requireCommand(t, "echo")
	manager := LocalCommandManager{}

	result, err := manager.Run(context.Background(), CommandConfig{
		Command: "echo",
		Args:    []string{"hello"},
	})

	require.NoError(t, err)
	assert.Equal(t, "hello\n", result.STDOUT)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "echo", result.Command)
}

func TestRunLocalStdinAndEnv(t *testing.T) {
	requireCommand(t, "sh")
	manager := LocalCommandManager{}

	result, err := manager.Run(context.Background(), CommandConfig{
		Command: "sh",
		Args:    []string{"-c", `read line; echo "$line $GREETING"`},
		Env:     []string{"GREETING=world"},
		Stdin:   "hello\n",
	})

	require.NoError(t, err)
	assert.Equal(t, "hello world\n", result.STDOUT)
}

func TestRunLocalExitCode(t *testing.T) {
	requireCommand(t, "sh")
	manager := LocalCommandManager{}

	result, err := manager.Run(context.Background(), CommandConfig{
		Command: "sh",
		Args:    []string{"-c", "echo oops >&2; exit 3"},
	})

	assert.Error(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "oops\n", result.STDERR)
}

func TestRunLocalContextTimeout(t *testing.T) {
	requireCommand(t, "sleep")
	manager := LocalCommandManager{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := manager.Run(ctx, CommandConfig{Command: "sleep", Args: []string{"5"}})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunLocalEmptyCommand(t *testing.T) {
	manager := LocalCommandManager{}

	_, err := manager.Run(context.Background(), CommandConfig{})
	assert.EqualError(t, err, "no command given")
}

func TestRunLocalLogsResult(t *testing.T) {
	requireCommand(t, "sh")
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetDebug(true)
	manager := LocalCommandManager{Logger: l}

	result, err := manager.Run(context.Background(), CommandConfig{
		Command: "sh",
		Args:    []string{"-c", "exit 0"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Local command finished")
	assert.Contains(t, out, "command=sh")
	assert.Contains(t, out, "exitCode=0")
	assert.Contains(t, out, "duration=")
	assert.Positive(t, result.Duration)
}
